package ports

import (
	"errors"
	"fmt"
)

// ErrNoResults indicates every search query was exhausted without
// accumulating a single track. Terminal for the request; never retried.
var ErrNoResults = errors.New("no tracks found")

// ErrInterpretation is the sentinel wrapped by InterpretationError so
// callers can branch with errors.Is.
var ErrInterpretation = errors.New("vibe interpretation failed")

// InterpretationError reports an interpreter that exhausted its retry
// budget. Cause carries the last attempt's failure.
type InterpretationError struct {
	Attempts int
	Cause    error
}

func (e *InterpretationError) Error() string {
	return fmt.Sprintf("vibe interpretation failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *InterpretationError) Unwrap() error { return e.Cause }

func (e *InterpretationError) Is(target error) bool { return target == ErrInterpretation }

// AuthError is a catalog authentication failure. It is fatal for the
// current request and propagated unchanged; session refresh is the
// caller's concern.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("catalog authentication failed (status %d)", e.Status)
}

// RateLimitError is surfaced when the catalog keeps rate limiting after
// the local retry budget is spent.
type RateLimitError struct {
	RetryAfter string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("catalog rate limited (retry after %s)", e.RetryAfter)
	}
	return "catalog rate limited"
}
