// Package prompt provides the fixed instructional text for each review phase.
package prompt

// Ack is the canned model turn used when seeding a review conversation, so
// the chunk that follows is treated as the content to review rather than as
// instructions.
const Ack = "Ok"

// NoChanges is the one-shot instruction used when the input produced no
// chunks at all.
const NoChanges = "Say that you didn't find any relevant changes to comment on any file"

const reviewTemplate = `This is a pull request or part of a pull request if the pull request is very large.
Suppose you review this PR as an excellent software engineer and an excellent security engineer.
Can you tell me the issues with differences in a pull request and provide suggestions to improve it?
You can provide a review summary and issue comments per file if any major issues are found.
Always include the name of the file that is citing the improvement or problem.
In the next messages I will be sending you the difference between the GitHub file codes, okay?`

const summarizeTemplate = `Can you summarize this for me?
It would be good to stick to highlighting pressing issues and providing code suggestions to improve the pull request.
Here's what you need to summarize:`

// Review returns the reviewer instructions used to seed each chunk
// conversation.
//
// TODO: extra is accepted for compatibility but never folded into the
// template; it only reaches the model as the system instruction. Either
// interpolate it here or drop the parameter.
func Review(extra string) string {
	_ = extra
	return reviewTemplate
}

// Summarize returns the instructions for condensing several chunk reviews
// into a single review.
func Summarize() string {
	return summarizeTemplate
}
