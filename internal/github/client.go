// Package github fetches repository metadata from the GitHub API.
package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	zeroerrors "zero.dev/zero/internal/errors"
)

// RateLimitHint is shown when GitHub refuses requests because of rate limiting
const RateLimitHint = "Try setting a GITHUB_TOKEN to increase the limit."

// Readme placeholders used in place of content
const (
	NoReadme = "No README file found."
)

// RepoMetadata is the subset of repository fields the analysis uses
type RepoMetadata struct {
	Name        string
	Description string
	Stars       int
	License     string
}

// MetadataFetcher reads public repository information
type MetadataFetcher interface {
	RepoMetadata(ctx context.Context, owner, repo string) (*RepoMetadata, error)
	Languages(ctx context.Context, owner, repo string) (map[string]int, error)
	Readme(ctx context.Context, owner, repo string) (string, error)
}

var _ MetadataFetcher = (*Client)(nil)

// Client implements MetadataFetcher with go-github
type Client struct {
	client *github.Client
}

// NewClient creates a client authenticated with token when it is non-empty.
// A non-empty baseURL points the client at another API host, such as GitHub
// Enterprise or a test server.
func NewClient(ctx context.Context, token, baseURL string) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return &Client{client: client}, nil
}

// NewClientFromGitHub wraps an existing go-github client
func NewClientFromGitHub(client *github.Client) *Client {
	return &Client{client: client}
}

// ResolveToken returns the configured token, falling back to the GitHub CLI's
// stored credentials and GH_TOKEN/GITHUB_TOKEN. An empty result means
// unauthenticated access.
func ResolveToken(configured string) string {
	if configured != "" {
		return configured
	}
	token, _ := auth.TokenForHost("github.com")
	return token
}

// RepoMetadata fetches name, description, stars and license
func (c *Client) RepoMetadata(ctx context.Context, owner, repo string) (*RepoMetadata, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, mapError(owner, repo, err)
	}

	meta := &RepoMetadata{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
	}
	if r.License != nil {
		meta.License = r.License.GetName()
	}
	return meta, nil
}

// Languages returns bytes of code per language
func (c *Client) Languages(ctx context.Context, owner, repo string) (map[string]int, error) {
	langs, _, err := c.client.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, mapError(owner, repo, err)
	}
	return langs, nil
}

// Readme returns the decoded README. A missing README yields NoReadme and an
// undecodable one yields a description of the decode error; neither is an error.
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, error) {
	content, _, err := c.client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
			return NoReadme, nil
		}
		return "", mapError(owner, repo, err)
	}
	if content == nil || content.Content == nil {
		return NoReadme, nil
	}

	text, err := decodeContent(content)
	if err != nil {
		return fmt.Sprintf("Error decoding README: %v", err), nil
	}
	return text, nil
}

func decodeContent(content *github.RepositoryContent) (string, error) {
	if content.GetEncoding() != "base64" {
		return content.GetContent()
	}
	// GitHub wraps base64 payloads at 60 columns
	var encoded string
	if content.Content != nil {
		encoded = *content.Content
	}
	raw := strings.ReplaceAll(encoded, "\n", "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// mapError translates go-github errors into the analysis error taxonomy
func mapError(owner, repo string, err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return zeroerrors.WithHint(zeroerrors.ErrRateLimited, RateLimitHint)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch errResp.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", zeroerrors.ErrRepoNotFound, owner, repo)
		case http.StatusForbidden:
			return zeroerrors.WithHint(zeroerrors.ErrRateLimited, RateLimitHint)
		default:
			return fmt.Errorf("GitHub API error: %w", err)
		}
	}

	return fmt.Errorf("network error: %w", err)
}

// ParseRepoURL extracts owner and repo from https://github.com/owner/repo[.git]
// or the owner/repo shorthand.
func ParseRepoURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	invalid := zeroerrors.WithHint(
		fmt.Errorf("%w '%s'", zeroerrors.ErrInvalidRepoURL, raw),
		"Please use 'https://github.com/owner/repo'.")

	var parts []string
	if _, rest, ok := strings.Cut(raw, "github.com/"); ok {
		parts = strings.Split(strings.Trim(rest, "/"), "/")
		if len(parts) < 2 {
			return "", "", invalid
		}
	} else {
		parts = strings.Split(raw, "/")
		if len(parts) != 2 {
			return "", "", invalid
		}
	}

	owner := parts[0]
	repo := strings.TrimSuffix(parts[1], ".git")
	if owner == "" || repo == "" {
		return "", "", invalid
	}
	return owner, repo, nil
}
