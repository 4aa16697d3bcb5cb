package actions

import (
	"fmt"
	"strings"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/github"
	"zero.dev/zero/internal/runtime"
	"zero.dev/zero/internal/tui"
)

const bannerWidth = 30

// AnalyzeOptions contains options for the repository analysis tool
type AnalyzeOptions struct {
	Fetcher github.MetadataFetcher
	Backend ai.Backend
	URL     string
	// MaxReadme is the number of README characters sent to the model
	MaxReadme int
	// Render buffers the answer and renders it as markdown instead of streaming it
	Render bool
}

// AnalyzeAction summarizes a public GitHub repository. The answer is written
// to the output as it arrives and also returned.
func AnalyzeAction(ctx *runtime.Context, opts AnalyzeOptions) (string, error) {
	splog := ctx.Splog

	owner, repo, err := github.ParseRepoURL(opts.URL)
	if err != nil {
		return "", err
	}
	fullName := owner + "/" + repo

	splog.Status("--- Starting Analysis for %s ---", fullName)

	summary, err := fetchRepoSummary(ctx, opts.Fetcher, owner, repo)
	if err != nil {
		return "", err
	}

	splog.Status("Building context for AI...")
	user := ai.BuildAnalysisUserPrompt(*summary, opts.MaxReadme)

	splog.Status("Generating summary...")
	splog.Newline()
	splog.Info("%s", strings.Repeat("=", bannerWidth))
	splog.Success(" AI Analysis of %s ", fullName)
	splog.Info("%s", strings.Repeat("=", bannerWidth))

	stream, err := opts.Backend.Generate(ctx.Context, ai.Request{
		System:  ctx.Prompts.Analyze,
		User:    user,
		Options: ai.AnalysisOptions,
	})
	if err != nil {
		return "", err
	}

	var text string
	if opts.Render {
		text, err = ai.Drain(stream, nil)
		if err == nil && strings.TrimSpace(text) != "" {
			splog.Page(tui.RenderMarkdown(text, splog.Style()))
		}
	} else {
		text, err = ai.Drain(stream, splog.Writer())
		if text != "" {
			splog.Newline()
		}
	}
	if err != nil {
		return text, err
	}

	if strings.TrimSpace(text) == "" {
		splog.Warn("The model returned an empty analysis.")
	}
	return text, nil
}

func fetchRepoSummary(ctx *runtime.Context, fetcher github.MetadataFetcher, owner, repo string) (*ai.RepoSummary, error) {
	meta, err := fetcher.RepoMetadata(ctx.Context, owner, repo)
	if err != nil {
		return nil, err
	}

	languages, err := fetcher.Languages(ctx.Context, owner, repo)
	if err != nil {
		return nil, err
	}

	readme, err := fetcher.Readme(ctx.Context, owner, repo)
	if err != nil {
		return nil, err
	}

	name := meta.Name
	if name == "" {
		name = fmt.Sprintf("%s/%s", owner, repo)
	}
	return &ai.RepoSummary{
		Name:        name,
		Description: meta.Description,
		Languages:   languages,
		Stars:       meta.Stars,
		License:     meta.License,
		Readme:      readme,
	}, nil
}
