package testhelpers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Owner and Repo for the mock server
	Owner string
	Repo  string
	// Description, Stars and License describe the repository metadata
	Description string
	Stars       int
	License     string
	// Languages maps language names to byte counts
	Languages map[string]int
	// Readme is the decoded README content; nil means no README exists
	Readme *string
	// RawReadme overrides the base64 payload, used to exercise decode failures
	RawReadme string
	// Status forces every endpoint to answer with this HTTP status when non-zero
	Status int
	// Requests records the paths that were requested
	Requests []string
	// Authorization records the last Authorization header seen
	Authorization string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	readme := "# repo\n\nA sample project.\n"
	return &MockGitHubServerConfig{
		Owner:       "owner",
		Repo:        "repo",
		Description: "A sample project",
		Stars:       42,
		License:     "MIT License",
		Languages:   map[string]int{"Go": 1000},
		Readme:      &readme,
	}
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// repository, languages and readme endpoints.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()
	basePath := "/repos/" + config.Owner + "/" + config.Repo

	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			config.Requests = append(config.Requests, r.URL.Path)
			config.Authorization = r.Header.Get("Authorization")
			switch config.Status {
			case 0:
				next(w, r)
			case http.StatusForbidden:
				w.Header().Set("X-RateLimit-Remaining", "0")
				writeJSON(w, http.StatusForbidden, map[string]string{"message": "API rate limit exceeded"})
			default:
				writeJSON(w, config.Status, map[string]string{"message": http.StatusText(config.Status)})
			}
		}
	}

	mux.HandleFunc(basePath, guard(func(w http.ResponseWriter, _ *http.Request) {
		repo := &github.Repository{
			Name:            github.String(config.Repo),
			FullName:        github.String(config.Owner + "/" + config.Repo),
			StargazersCount: github.Int(config.Stars),
		}
		if config.Description != "" {
			repo.Description = github.String(config.Description)
		}
		if config.License != "" {
			repo.License = &github.License{Name: github.String(config.License)}
		}
		writeJSON(w, http.StatusOK, repo)
	}))

	mux.HandleFunc(basePath+"/languages", guard(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, config.Languages)
	}))

	mux.HandleFunc(basePath+"/readme", guard(func(w http.ResponseWriter, _ *http.Request) {
		if config.Readme == nil && config.RawReadme == "" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
			return
		}
		content := config.RawReadme
		if content == "" {
			content = base64.StdEncoding.EncodeToString([]byte(*config.Readme))
		}
		writeJSON(w, http.StatusOK, &github.RepositoryContent{
			Type:     github.String("file"),
			Name:     github.String("README.md"),
			Encoding: github.String("base64"),
			Content:  github.String(content),
		})
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string) {
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client, server.URL + "/"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
