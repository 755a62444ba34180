package domain

import "errors"

// Error taxonomy surfaced across the service boundary. Store-level failures
// are wrapped around one of these sentinels so callers can match with
// errors.Is while the original cause stays in the chain.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreUnavailable    = errors.New("store unavailable")
)
