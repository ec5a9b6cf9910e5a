package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Argument errors: reported as usage, raised before any mutation
	ErrArgCount          ErrorCode = "ARG_COUNT"
	ErrEmptyArgument     ErrorCode = "EMPTY_ARGUMENT"
	ErrForbiddenChars    ErrorCode = "FORBIDDEN_CHARS"
	ErrPathNotFound      ErrorCode = "PATH_NOT_FOUND"
	ErrDuplicateCategory ErrorCode = "DUPLICATE_CATEGORY"
	ErrFormatMismatch    ErrorCode = "FORMAT_MISMATCH"

	// Traversal errors: fatal, abort the remaining walk
	ErrLevelOutOfRange  ErrorCode = "LEVEL_OUT_OF_RANGE"
	ErrIncompleteState  ErrorCode = "INCOMPLETE_STATE"
	ErrTraversal        ErrorCode = "TRAVERSAL"
	ErrDirRead          ErrorCode = "DIR_READ"
	ErrDirRemove        ErrorCode = "DIR_REMOVE"
	ErrLinkCreate       ErrorCode = "LINK_CREATE"
	ErrLinkRemove       ErrorCode = "LINK_REMOVE"
	ErrLinkRead         ErrorCode = "LINK_READ"
	ErrUnknownLinkType  ErrorCode = "UNKNOWN_LINK_TYPE"
	ErrUnknownRecognize ErrorCode = "UNKNOWN_RECOGNITION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

var argumentCodes = map[ErrorCode]bool{
	ErrInvalidInput:      true,
	ErrArgCount:          true,
	ErrEmptyArgument:     true,
	ErrForbiddenChars:    true,
	ErrPathNotFound:      true,
	ErrDuplicateCategory: true,
	ErrFormatMismatch:    true,
}

var traversalCodes = map[ErrorCode]bool{
	ErrLevelOutOfRange: true,
	ErrIncompleteState: true,
	ErrTraversal:       true,
	ErrDirRead:         true,
	ErrDirRemove:       true,
	ErrLinkCreate:      true,
	ErrLinkRemove:      true,
	ErrLinkRead:        true,
}

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an Error
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an Error
func GetErrorDetails(err error) map[string]interface{} {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// IsArgumentError reports whether err is bad command line input. These are
// shown as usage messages and are always raised before any mutation.
func IsArgumentError(err error) bool {
	return argumentCodes[GetErrorCode(err)]
}

// IsTraversalError reports whether err aborted a walk.
func IsTraversalError(err error) bool {
	return traversalCodes[GetErrorCode(err)]
}

// Message returns the human message of err without the code prefix.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
		}
		return e.Message
	}
	return err.Error()
}
