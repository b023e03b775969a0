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
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors
	ErrTemplateNotFound    ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrPlaceholderMismatch ErrorCode = "PLACEHOLDER_MISMATCH"

	// Credential errors
	ErrMissingCredential     ErrorCode = "MISSING_CREDENTIAL"
	ErrConflictingCredential ErrorCode = "CONFLICTING_CREDENTIALS"

	// Destination errors
	ErrDestinationUnresolvable ErrorCode = "DESTINATION_UNRESOLVABLE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Agent errors
	ErrAgentRequest ErrorCode = "AGENT_REQUEST"
)

// MwbotError represents a structured error with code and details
type MwbotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MwbotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MwbotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MwbotError) Is(target error) bool {
	var targetErr *MwbotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MwbotError with the given code and message
func New(code ErrorCode, message string) *MwbotError {
	return &MwbotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MwbotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MwbotError {
	return &MwbotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MwbotError
func Wrap(err error, code ErrorCode, message string) *MwbotError {
	if err == nil {
		return nil
	}
	return &MwbotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MwbotError {
	if err == nil {
		return nil
	}
	return &MwbotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MwbotError) WithDetail(key string, value interface{}) *MwbotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mwErr *MwbotError
	if errors.As(err, &mwErr) {
		return mwErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MwbotError
func GetErrorCode(err error) ErrorCode {
	var mwErr *MwbotError
	if errors.As(err, &mwErr) {
		return mwErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MwbotError
func GetErrorDetails(err error) map[string]interface{} {
	var mwErr *MwbotError
	if errors.As(err, &mwErr) {
		return mwErr.Details
	}
	return nil
}
