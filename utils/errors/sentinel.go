package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is() and errors.As() across layers.
var (
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrOperationTimeout    = errors.New("operation timeout")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")
	ErrInvalidInput        = errors.New("invalid input")
)

// IsUpstreamUnavailable checks if an error represents an upstream outage with
// no fallback value available.
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsTimeoutError checks if an error represents a timeout condition
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}

// IsRateLimitError checks if an error represents a rate limiting issue
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRetryableError determines if an error represents a condition that can be retried
func IsRetryableError(err error) bool {
	return IsRateLimitError(err) ||
		IsTimeoutError(err) ||
		IsUpstreamUnavailable(err)
}

// NewUpstreamUnavailableError creates an AppContextError that wraps
// ErrUpstreamUnavailable while preserving the original cause.
func NewUpstreamUnavailableError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	wrapped := fmt.Errorf("%w: %w", ErrUpstreamUnavailable, cause)
	if cause == nil {
		wrapped = fmt.Errorf("%w", ErrUpstreamUnavailable)
	}
	return NewAppContextError(
		string(ErrCodeExternalAPI),
		"upstream service unavailable",
		layer,
		component,
		operation,
		wrapped,
		context,
	)
}

// NewOperationTimeoutError creates an AppContextError that wraps ErrOperationTimeout.
func NewOperationTimeoutError(layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	wrapped := fmt.Errorf("%w: %w", ErrOperationTimeout, cause)
	if cause == nil {
		wrapped = fmt.Errorf("%w", ErrOperationTimeout)
	}
	return NewAppContextError(
		string(ErrCodeTimeout),
		"operation timed out",
		layer,
		component,
		operation,
		wrapped,
		context,
	)
}
