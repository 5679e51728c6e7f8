// Package github provides interfaces and implementations for GitHub API operations.
package github

import "context"

// API defines the interface for GitHub API operations.
// This interface enables testing by allowing mock implementations.
type API interface {
	// PublishReview posts body as a review comment on a pull request,
	// attached to the given commit. It is the pipeline's terminal step and
	// is never retried.
	PublishReview(ctx context.Context, owner, repo string, number int, commitHash, body string) error

	// RepositoryContents fetches the content of every file reachable from
	// ref, filtered by the extension allow-list plus an always-include
	// override list, concatenated into a single reviewable text.
	RepositoryContents(ctx context.Context, owner, repo, ref string, includeExts, alwaysInclude []string) (string, error)
}
