package usecase

import (
	"context"
	"errors"
	"time"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/domain/repository"

	"go.uber.org/zap"
)

const (
	defaultMaxRetries = 3
	baseBackoff       = 500 * time.Millisecond
	attemptTimeout    = 20 * time.Second
)

// ResilientCaller wraps an AIProvider with retry semantics: transport
// failures and rate limits are retried with doubling backoff, every
// other provider failure is terminal on the first hit.
type ResilientCaller struct {
	provider   repository.AIProvider
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
	logger     *zap.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewResilientCaller(provider repository.AIProvider, maxRetries int, logger *zap.Logger) *ResilientCaller {
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	return &ResilientCaller{
		provider:   provider,
		maxRetries: maxRetries,
		baseDelay:  baseBackoff,
		timeout:    attemptTimeout,
		logger:     logger,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call submits system-prefixed prompt text to the provider. Up to
// maxRetries+1 attempts are made; each attempt gets its own 20s timeout,
// there is no overall deadline composing across retries. The backoff
// delay starts at 500ms and doubles before every retry.
func (r *ResilientCaller) Call(ctx context.Context, prompt, system string) (string, error) {
	text := prompt
	if system != "" {
		text = system + "\n\n" + prompt
	}

	delay := r.baseDelay
	var lastErr *entity.RemoteError

	for attempt := 1; attempt <= r.maxRetries+1; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.timeout)
		reply, err := r.provider.Generate(attemptCtx, text)
		cancel()

		if err == nil {
			if attempt > 1 {
				r.logger.Info("remote generation recovered", zap.Int("attempt", attempt))
			}
			return reply, nil
		}

		lastErr = asRemoteError(err)
		r.logger.Warn("remote generation attempt failed",
			zap.Int("attempt", attempt),
			zap.String("kind", lastErr.Kind.String()),
			zap.Int("status", lastErr.StatusCode),
			zap.Error(err),
		)

		if !lastErr.Retryable() || attempt == r.maxRetries+1 {
			break
		}

		if err := r.sleep(ctx, delay); err != nil {
			return "", &entity.RemoteError{Kind: entity.KindTransport, Cause: err}
		}
		delay *= 2
	}

	return "", lastErr
}

// asRemoteError coerces any provider error into the tagged taxonomy.
// Adapters already return *entity.RemoteError; anything else is an
// unclassified transport failure.
func asRemoteError(err error) *entity.RemoteError {
	var re *entity.RemoteError
	if errors.As(err, &re) {
		return re
	}
	return &entity.RemoteError{Kind: entity.KindTransport, Cause: err}
}
