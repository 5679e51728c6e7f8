// Package constants defines shared constants for the gemini-pr-review application.
package constants

// Default configuration values
const (
	// DefaultChunkSize is the default number of characters per diff chunk.
	DefaultChunkSize = 3500

	// DefaultModel is the Gemini model used when none is specified.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTemperature is the default sampling temperature.
	DefaultTemperature = 1.0

	// DefaultTopP is the default nucleus-sampling probability.
	DefaultTopP = 0.95

	// DefaultTopK is the default sampling breadth. Zero disables top-k sampling.
	DefaultTopK = 0

	// DefaultMaxOutputTokens is the default cap on generated tokens per reply.
	DefaultMaxOutputTokens = 8192

	// DefaultBranch is the ref walked when reviewing full repository contents.
	DefaultBranch = "main"
)

// Review comment trigger commands
const (
	CommandReviewAll  = "gemini review all"
	CommandReviewDiff = "gemini review diff"
	CommandSuggest    = "gemini suggest next steps"
)

// Review event type posted to the pull-request sink
const ReviewEventComment = "COMMENT"
