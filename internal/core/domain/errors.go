package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	// It is surfaced to the caller verbatim and never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates the provider credential is missing or empty.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the provider rejected the credential.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrTimeout indicates the provider call exceeded its deadline.
	// Timeouts are terminal: an attempt that timed out already consumed
	// its full time budget and is never retried.
	ErrTimeout = errors.New("search timed out")

	// ErrProviderUnavailable indicates a connectivity-class provider
	// failure (connection refused/reset, 429, 5xx). This is the structured
	// transient category: it is eligible for exactly one retry.
	ErrProviderUnavailable = errors.New("search provider unavailable")
)
