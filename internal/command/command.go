// Package command maps triggering pull-request comments to review modes.
package command

import (
	"strings"

	"github.com/reviewloop/gemini-pr-review/internal/constants"
)

// Kind selects what input the review runs over.
type Kind string

// Review modes
const (
	// KindAll reviews the full repository contents.
	KindAll Kind = "all"

	// KindDiff reviews the pull-request diff. This is the default.
	KindDiff Kind = "diff"

	// KindSuggest asks for next-step suggestions instead of a review.
	KindSuggest Kind = "suggest"
)

// Parse determines the review mode from a triggering comment. Matching is a
// case-insensitive prefix check; an unrecognized or empty comment falls back
// to KindDiff.
func Parse(comment string) Kind {
	trimmed := strings.ToLower(strings.TrimSpace(comment))

	switch {
	case strings.HasPrefix(trimmed, constants.CommandReviewAll):
		return KindAll
	case strings.HasPrefix(trimmed, constants.CommandReviewDiff):
		return KindDiff
	case strings.HasPrefix(trimmed, constants.CommandSuggest):
		return KindSuggest
	default:
		return KindDiff
	}
}
