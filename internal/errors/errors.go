// Package errors provides custom error types for the gemini-pr-review application.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNoGeminiKey indicates that the GEMINI_API_KEY environment variable is not set.
	ErrNoGeminiKey = errors.New("GEMINI_API_KEY environment variable not set")

	// ErrNoGitHubToken indicates that the GITHUB_TOKEN environment variable is not set.
	ErrNoGitHubToken = errors.New("GITHUB_TOKEN environment variable not set")

	// ErrNoRepository indicates that the GITHUB_REPOSITORY environment variable is not set.
	ErrNoRepository = errors.New("GITHUB_REPOSITORY environment variable not set")

	// ErrNoPullRequestNumber indicates that the GITHUB_PULL_REQUEST_NUMBER environment variable is not set.
	ErrNoPullRequestNumber = errors.New("GITHUB_PULL_REQUEST_NUMBER environment variable not set")

	// ErrNoCommitHash indicates that the GIT_COMMIT_HASH environment variable is not set.
	ErrNoCommitHash = errors.New("GIT_COMMIT_HASH environment variable not set")

	// ErrChunkSize indicates a non-positive chunk size.
	ErrChunkSize = errors.New("chunk size must be a positive integer")

	// ErrEmptyReply indicates that the model returned no usable text.
	ErrEmptyReply = errors.New("model returned an empty reply")
)

// ValidationError represents an error in configuration or input validation.
type ValidationError struct {
	Field string
	Value interface{}
	Msg   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s (value: %v): %s", e.Field, e.Value, e.Msg)
}

// APIError represents an error from an external API.
type APIError struct {
	Service string
	Method  string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error in %s: %v", e.Service, e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// API wraps err as an APIError for the given service and method.
func API(service, method string, err error) error {
	return &APIError{Service: service, Method: method, Err: err}
}

// ReviewError represents a failure inside the review pipeline. Chunk is the
// zero-based index of the chunk whose model call failed, or -1 when the
// failure occurred during summarization.
type ReviewError struct {
	Stage string
	Chunk int
	Err   error
}

// Error implements the error interface.
func (e *ReviewError) Error() string {
	if e.Chunk >= 0 {
		return fmt.Sprintf("review failed at %s (chunk %d): %v", e.Stage, e.Chunk, e.Err)
	}
	return fmt.Sprintf("review failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReviewError) Unwrap() error {
	return e.Err
}
