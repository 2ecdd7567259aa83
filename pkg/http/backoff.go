package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// BackoffConfig retries failed requests with an exponentially growing delay.
// Only network errors and 5xx/429 responses are retried.
type BackoffConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// NewBackoffConfig returns a conservative default: 3 retries starting at 200ms.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2,
	}
}

func (b *BackoffConfig) delay(attempt int) time.Duration {
	d := b.InitialDelay
	for i := 0; i < attempt; i++ {
		d = time.Duration(float64(d) * b.Multiplier)
		if b.MaxDelay > 0 && d > b.MaxDelay {
			return b.MaxDelay
		}
	}
	return d
}

func retryable(status int, err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (hc *Client) doRequestWithBackoff(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (int, error) {
	if backoff == nil {
		backoff = hc.backoff
	}

	status, err := hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	if backoff == nil {
		return status, err
	}

	for attempt := 0; attempt < backoff.MaxRetries && retryable(status, err); attempt++ {
		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), status, err, attempt+1, backoff.MaxRetries)
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(backoff.delay(attempt)):
		}

		status, err = hc.doRequest(ctx, method, path, queryParams, headers, body, successResp, errorResp)
	}

	return status, err
}
