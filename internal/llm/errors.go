package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a failed request for the retry policy.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx answers.
	KindUnavailable Kind = iota
	// KindRateLimited is a 429 answer.
	KindRateLimited
	// KindInvalidOutput means the answer did not match the request schema.
	KindInvalidOutput
	// KindTruncated means the answer hit MaxTokens before it was complete.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind Kind

	// RetryAfter is the server's requested wait, when it sent one.
	RetryAfter time.Duration

	// Content is the offending answer for KindInvalidOutput and KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or false when err did not come from a
// provider.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// fromStatus classifies a vendor SDK error by its HTTP status code.
func fromStatus(status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func invalidOutput(content json.RawMessage, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidOutput, Content: content, Err: fmt.Errorf(format, args...)}
}
