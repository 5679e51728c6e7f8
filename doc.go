// Package main provides the gemini-pr-review command-line tool.
//
// Gemini-pr-review is a Go tool that reviews GitHub pull requests using
// Gemini. It splits the diff (or the full repository contents) into
// size-bounded chunks, reviews each chunk in its own conversation, condenses
// the chunk reviews into one summary when there are several, and posts the
// result as a review comment on the pull request.
//
// Usage:
//
//	gemini-pr-review --diff "$(git diff main)" --diff-chunk-size 3500
//	gemini-pr-review --github-comment "gemini review all" --include-extensions .go,.md
//
// Credentials and pull-request coordinates come from the environment:
// GEMINI_API_KEY, GITHUB_TOKEN, GITHUB_REPOSITORY,
// GITHUB_PULL_REQUEST_NUMBER, and GIT_COMMIT_HASH.
package main
