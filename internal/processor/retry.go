package processor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"merchant-console/internal/config"
	"merchant-console/internal/console"
	"merchant-console/internal/domain"
)

// RetryClient retries the read-only fetches on transient failures. The
// refund POST is never retried here; the refund workflow surfaces its
// errors to the user instead.
type RetryClient struct {
	inner      console.ProcessorClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner console.ProcessorClient, cfg config.RetryConfig) console.ProcessorClient {
	return &RetryClient{
		inner:      inner,
		baseDelay:  time.Duration(cfg.BaseDelay) * time.Second,
		maxRetries: int(cfg.MaxRetries),
	}
}

func (r *RetryClient) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return retry(r, ctx, func(ctx context.Context) ([]domain.Payment, error) {
		return r.inner.ListPayments(ctx)
	})
}

func (r *RetryClient) NextSettlement(ctx context.Context) (*domain.Settlement, error) {
	return retry(r, ctx, func(ctx context.Context) (*domain.Settlement, error) {
		return r.inner.NextSettlement(ctx)
	})
}

func (r *RetryClient) CreateRefund(ctx context.Context, payment domain.Payment) error {
	return r.inner.CreateRefund(ctx, payment)
}

// Generic retry helper
func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return zero, err
		}

		if attempt < r.maxRetries-1 {
			time.Sleep(r.backoff(attempt))
		}
	}

	return zero, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// Helper: to check retryable errors
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Intn(1000)) * time.Millisecond

	return base + jitter
}
