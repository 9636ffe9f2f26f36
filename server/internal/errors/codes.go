package errors

import (
	"fmt"
)

// ErrorCode represents a specific failure class for interpreter operations.
type ErrorCode string

const (
	// ErrCodeExtractionFailed indicates a slot could not be found in the utterance.
	ErrCodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	// ErrCodeMatchFailed indicates no record satisfied resolution.
	ErrCodeMatchFailed ErrorCode = "MATCH_FAILED"
	// ErrCodeStoreFailed indicates a record-store operation failed.
	ErrCodeStoreFailed ErrorCode = "STORE_FAILED"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeRateLimitExceeded indicates rate limit has been exceeded.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeBusy indicates another utterance is already in flight.
	ErrCodeBusy ErrorCode = "BUSY"
)

// InterpreterError is a structured error carrying a failure class.
// Every instance is recovered into a user-facing reply before it leaves
// the interpreter; the code exists for logging and handlers only.
type InterpreterError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InterpreterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *InterpreterError) Unwrap() error {
	return e.Cause
}

// GetCode returns the error code.
func (e *InterpreterError) GetCode() ErrorCode {
	return e.Code
}

// ExtractionFailed creates an extraction failure.
func ExtractionFailed(msg string) *InterpreterError {
	return &InterpreterError{Code: ErrCodeExtractionFailed, Message: msg}
}

// MatchFailed creates a match failure.
func MatchFailed(msg string) *InterpreterError {
	return &InterpreterError{Code: ErrCodeMatchFailed, Message: msg}
}

// StoreFailed creates a store failure wrapping the underlying error.
func StoreFailed(msg string, cause error) *InterpreterError {
	return &InterpreterError{Code: ErrCodeStoreFailed, Message: msg, Cause: cause}
}
