package service

import (
	"fmt"
	"strings"
)

// ValidationError is a business rule rejection carrying a stable error code
// that is surfaced to the caller unchanged
type ValidationError struct {
	Code   string
	Reason string
}

// Error returns the string representation of the validation error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func newValidationError(code, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ChecksumError indicates that a stored resource aggregate failed integrity
// verification. The enclosing write must not be committed.
type ChecksumError struct {
	ResourceID string
	Reason     string
}

// Error returns the string representation of the checksum error
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum verification failed for resource [%s]: %s", e.ResourceID, e.Reason)
}

// NoStageConfiguredError indicates a missing registration for a
// domain/approach/step combination. This is a configuration fault and is
// checked at startup; it must never surface per request in production.
type NoStageConfiguredError struct {
	Missing []string
}

// Error returns the string representation of the configuration error
func (e *NoStageConfiguredError) Error() string {
	return fmt.Sprintf("no stage handler configured for: %s", strings.Join(e.Missing, ", "))
}
