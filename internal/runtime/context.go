package runtime

import (
	"context"
	"errors"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/tui"
)

// Context provides access to configuration, output and input for commands
type Context struct {
	Context context.Context
	Splog   *tui.Splog
	Config  *config.Config
	Prompts *ai.Prompts
	Input   tui.LineReader
	Gate    *tui.Gate
}

// NewContext creates a context whose confirmation gate reads from input
func NewContext(ctx context.Context, splog *tui.Splog, cfg *config.Config, prompts *ai.Prompts, input tui.LineReader) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context: ctx,
		Splog:   splog,
		Config:  cfg,
		Prompts: prompts,
		Input:   input,
		Gate:    tui.NewGate(input),
	}
}

type contextKey struct{}

// WithContext returns a copy of parent that carries rc
func WithContext(parent context.Context, rc *Context) context.Context {
	return context.WithValue(parent, contextKey{}, rc)
}

// GetContext returns the runtime context stored in ctx by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx != nil {
		if rc, ok := ctx.Value(contextKey{}).(*Context); ok {
			return rc, nil
		}
	}
	return nil, errors.New("runtime context not initialized")
}
