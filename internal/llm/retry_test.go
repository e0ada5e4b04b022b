package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

var okResponse = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func failure(k Kind) MockResponse {
	return MockResponse{Err: &Error{Kind: k, Err: errors.New(k.String())}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name   string
		script []MockResponse
		calls  int
		ok     bool
	}{
		{"first try", []MockResponse{okResponse}, 1, true},
		{"unavailable then ok", []MockResponse{failure(KindUnavailable), okResponse}, 2, true},
		{"rate limited then ok", []MockResponse{failure(KindRateLimited), okResponse}, 2, true},
		{"plain error then ok", []MockResponse{{Err: errors.New("reset by peer")}, okResponse}, 2, true},
		{"gives up", []MockResponse{failure(KindUnavailable), failure(KindUnavailable), failure(KindUnavailable), okResponse}, 3, false},
		{"truncated is final", []MockResponse{failure(KindTruncated), okResponse}, 1, false},
		{"invalid output once", []MockResponse{failure(KindInvalidOutput), okResponse}, 2, true},
		{"invalid output twice", []MockResponse{failure(KindInvalidOutput), failure(KindInvalidOutput), okResponse}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err == nil) != tt.ok {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if mock.CallCount() != tt.calls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.calls)
			}
		})
	}
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	mock := NewMockProvider(failure(KindUnavailable), okResponse)
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	r := &retrying{cfg: fastRetry()}
	err := &Error{Kind: KindRateLimited, RetryAfter: 5 * time.Second}
	if d := r.delay(0, err); d != 5*time.Second {
		t.Errorf("delay = %v", d)
	}
}

func TestRetry_DelayIsCapped(t *testing.T) {
	r := &retrying{cfg: fastRetry()}
	for n := range 10 {
		if d := r.delay(n, errors.New("x")); d > 12*time.Millisecond {
			t.Fatalf("delay(%d) = %v exceeds the cap plus jitter", n, d)
		}
	}
}

func TestRetry_ModelID(t *testing.T) {
	if id := WithRetry(NewMockProvider(), fastRetry()).ModelID(); id != ProviderMock {
		t.Errorf("ModelID = %q", id)
	}
}
