package errors

import "fmt"

// ErrorCode represents a tubesort error code.
type ErrorCode string

const (
	ErrInvalidPuzzle ErrorCode = "INVALID_PUZZLE" // malformed puzzle input
	ErrInvalidMove   ErrorCode = "INVALID_MOVE"   // pour violates the legality rule
	ErrLimitExceeded ErrorCode = "LIMIT_EXCEEDED" // search aborted by expansion bound
	ErrInternal      ErrorCode = "INTERNAL"       // unexpected failure
)

// SolverError represents a structured error with code, message, and details.
type SolverError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SolverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidPuzzle creates an error for puzzle configurations rejected at the boundary.
func NewInvalidPuzzle(msg string) *SolverError {
	return &SolverError{
		Code:    ErrInvalidPuzzle,
		Message: msg,
	}
}

// NewInvalidMove creates an error for a pour that violates the legality rule.
func NewInvalidMove(from, to int, reason string) *SolverError {
	return &SolverError{
		Code:    ErrInvalidMove,
		Message: fmt.Sprintf("cannot pour tube %d into tube %d: %s", from, to, reason),
		Details: map[string]any{"from": from, "to": to},
	}
}

// NewLimitExceeded creates an error for a search that hit its expansion bound.
func NewLimitExceeded(limit int) *SolverError {
	return &SolverError{
		Code:    ErrLimitExceeded,
		Message: fmt.Sprintf("search aborted after %d expansions", limit),
		Details: map[string]any{"limit": limit},
	}
}

// NewInternal wraps an unexpected error.
func NewInternal(err error) *SolverError {
	return &SolverError{
		Code:    ErrInternal,
		Message: err.Error(),
	}
}

// Is checks if an error is a SolverError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SolverError); ok {
		return sErr.Code == code
	}
	return false
}
