// Package config builds the process configuration from the environment.
//
// The environment is read exactly once, here, at process start. Every other
// package receives what it needs as explicit parameters, so the core pipeline
// carries no ambient state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reviewloop/gemini-pr-review/internal/errors"
)

// Config holds the credentials and pull-request coordinates required to run a
// review. All fields are required.
type Config struct {
	// GeminiAPIKey authenticates against the Gemini API.
	GeminiAPIKey string

	// GitHubToken is the bearer token for the GitHub REST API.
	GitHubToken string

	// Repository is the target repository in "owner/name" form.
	Repository string

	// PullRequestNumber identifies the pull request receiving the comment.
	PullRequestNumber int

	// CommitHash is the commit the review comment is attached to.
	CommitHash string
}

// FromEnv reads the required environment variables and returns a validated
// Config. A missing variable fails fast with its sentinel error before any
// network call is made.
func FromEnv() (*Config, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil, errors.ErrNoGeminiKey
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.ErrNoGitHubToken
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		return nil, errors.ErrNoRepository
	}

	prNumber := os.Getenv("GITHUB_PULL_REQUEST_NUMBER")
	if prNumber == "" {
		return nil, errors.ErrNoPullRequestNumber
	}

	hash := os.Getenv("GIT_COMMIT_HASH")
	if hash == "" {
		return nil, errors.ErrNoCommitHash
	}

	number, err := strconv.Atoi(prNumber)
	if err != nil {
		return nil, &errors.ValidationError{
			Field: "GITHUB_PULL_REQUEST_NUMBER",
			Value: prNumber,
			Msg:   "must be an integer",
		}
	}

	cfg := &Config{
		GeminiAPIKey:      key,
		GitHubToken:       token,
		Repository:        repo,
		PullRequestNumber: number,
		CommitHash:        hash,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration fields for well-formedness.
func (c *Config) Validate() error {
	if _, _, err := splitRepository(c.Repository); err != nil {
		return err
	}
	if c.PullRequestNumber <= 0 {
		return &errors.ValidationError{
			Field: "PullRequestNumber",
			Value: c.PullRequestNumber,
			Msg:   "must be positive",
		}
	}
	return nil
}

// SplitRepository returns the owner and name parts of the Repository field.
func (c *Config) SplitRepository() (owner, name string, err error) {
	return splitRepository(c.Repository)
}

func splitRepository(repository string) (string, string, error) {
	parts := strings.SplitN(repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &errors.ValidationError{
			Field: "Repository",
			Value: repository,
			Msg:   fmt.Sprintf("must be in owner/name form, got %q", repository),
		}
	}
	return parts[0], parts[1], nil
}
