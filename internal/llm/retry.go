package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// WithRetry wraps p so failed requests are retried with capped exponential
// backoff. Truncated answers are never retried and schema mismatches are
// retried once.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrying{inner: p, cfg: cfg}
}

type retrying struct {
	inner Provider
	cfg   RetryConfig
}

func (r *retrying) ModelID() string { return r.inner.ModelID() }

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.cfg.MaxAttempts, 1)
	schemaRetries := 1

	var err error
	for n := range attempts {
		if n > 0 {
			if werr := sleep(ctx, r.delay(n-1, err)); werr != nil {
				return nil, werr
			}
		}
		var resp *Response
		if resp, err = r.inner.Generate(ctx, req); err == nil {
			return resp, nil
		}
		if !retryable(err, &schemaRetries) {
			return nil, err
		}
	}
	return nil, err
}

func retryable(err error, schemaRetries *int) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindTruncated:
		return false
	case KindInvalidOutput:
		if *schemaRetries == 0 {
			return false
		}
		*schemaRetries--
	}
	return true
}

// delay is the wait before retry n (zero based), with ±20% jitter. A
// server-sent RetryAfter wins.
func (r *retrying) delay(n int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(n))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d *= 0.8 + 0.4*rand.Float64()
	return time.Duration(d)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
