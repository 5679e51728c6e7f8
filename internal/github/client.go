package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/reviewloop/gemini-pr-review/internal/constants"
	"github.com/reviewloop/gemini-pr-review/internal/errors"
)

// Client implements the API interface for GitHub operations.
type Client struct {
	client *github.Client
}

// ensure Client implements API interface.
var _ API = (*Client)(nil)

// NewClient creates a new GitHub client authenticated with the given bearer
// token. The token is passed in explicitly; this package never reads the
// environment.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, errors.ErrNoGitHubToken
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{client: github.NewClient(tc)}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := github.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{client: client}, nil
}

// PublishReview posts body as a COMMENT review on the pull request.
func (c *Client) PublishReview(ctx context.Context, owner, repo string, number int, commitHash, body string) error {
	review := &github.PullRequestReviewRequest{
		Body:     github.String(body),
		CommitID: github.String(commitHash),
		Event:    github.String(constants.ReviewEventComment),
	}

	_, _, err := c.client.PullRequests.CreateReview(ctx, owner, repo, number, review)
	if err != nil {
		return errors.API("GitHub", fmt.Sprintf("PullRequests.CreateReview %s/%s#%d", owner, repo, number), err)
	}

	slog.Info("review comment published", "repository", owner+"/"+repo, "number", number)
	return nil
}

// RepositoryContents walks the recursive tree at ref and concatenates the
// content of every matching file as "File: <path>" blocks, in tree order.
func (c *Client) RepositoryContents(ctx context.Context, owner, repo, ref string, includeExts, alwaysInclude []string) (string, error) {
	tree, _, err := c.client.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return "", errors.API("GitHub", "Git.GetTree", err)
	}

	var sections []string
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		path := entry.GetPath()
		if !includeFile(path, includeExts, alwaysInclude) {
			continue
		}

		file, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path,
			&github.RepositoryContentGetOptions{Ref: ref})
		if err != nil {
			return "", errors.API("GitHub", "Repositories.GetContents", err)
		}
		if file == nil {
			continue
		}

		content, err := file.GetContent()
		if err != nil {
			return "", fmt.Errorf("decoding content of %s: %w", path, err)
		}

		slog.Debug("fetched file", "path", path, "chars", len(content))
		sections = append(sections, fmt.Sprintf("File: %s\n%s\n", path, content))
	}

	return strings.Join(sections, "\n"), nil
}

// includeFile reports whether path passes the extension allow-list. An empty
// allow-list admits everything; the always-include list overrides it.
func includeFile(path string, includeExts, alwaysInclude []string) bool {
	if len(includeExts) == 0 {
		return true
	}
	for _, ext := range includeExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	for _, name := range alwaysInclude {
		if path == name {
			return true
		}
	}
	return false
}
