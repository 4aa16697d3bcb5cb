package ai

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	zeroerrors "zero.dev/zero/internal/errors"
)

// breakerThreshold is the number of consecutive failures that opens the breaker
const breakerThreshold = 3

// BreakerBackend stops calling a backend after repeated failures so a long
// interactive session fails fast while the model server is down.
type BreakerBackend struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// WithBreaker wraps backend in a circuit breaker that opens after three
// consecutive failures and probes again after cooldown.
func WithBreaker(backend Backend, cooldown time.Duration) *BreakerBackend {
	return &BreakerBackend{
		backend: backend,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        backend.Name(),
			MaxRequests: 1,
			Timeout:     cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerThreshold
			},
			IsSuccessful: func(err error) bool {
				// Cancellation says nothing about backend health
				return err == nil || errors.Is(err, context.Canceled)
			},
		}),
	}
}

// Name identifies the wrapped backend
func (b *BreakerBackend) Name() string {
	return b.backend.Name()
}

// Generate forwards to the wrapped backend unless the breaker is open
func (b *BreakerBackend) Generate(ctx context.Context, req Request) (Stream, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.Generate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, zeroerrors.WithHint(
				zeroerrors.NewBackendError(b.Name(), err),
				"The model server failed repeatedly; check that it is running.")
		}
		return nil, err
	}
	return res.(Stream), nil
}
