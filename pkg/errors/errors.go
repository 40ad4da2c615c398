package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of compiler error
type ErrorType string

const (
	// ErrorTypeValidation indicates a value failed its grammar or range checks
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeNotFound indicates a document, element or parent id was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeConflict indicates a conflict with existing state
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an invariant violation inside the compiler
	ErrorTypeInternal ErrorType = "INTERNAL"

	// ErrorTypeStore indicates a content-store failure
	ErrorTypeStore ErrorType = "STORE"
)

// Well-known diagnostic codes produced by the validator and builder.
const (
	CodeUnknownProperty    = "UNKNOWN_PROPERTY"
	CodeInvalidValueFormat = "INVALID_VALUE_FORMAT"
	CodeOutOfRange         = "OUT_OF_RANGE"
	CodeNegativeValue      = "NEGATIVE_VALUE_NOT_ALLOWED"
	CodeMalformedGrammar   = "MALFORMED_GRAMMAR"
	CodeParentNotFound     = "PARENT_NOT_FOUND"
	CodeEncodingFailure    = "ENCODING_FAILURE"
	CodeRequiredProperty   = "REQUIRED_PROPERTY_MISSING"
	CodeUnknownElementType = "UNKNOWN_ELEMENT_TYPE"
)

// DomainError represents a compiler error with rich context
type DomainError struct {
	Type       ErrorType              `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	HTTPStatus int                    `json:"-"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType ErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		HTTPStatus: errorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// Is checks if the error is of a specific type and code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

func errorTypeToStatusCode(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeConflict:
		return http.StatusConflict
	case ErrorTypeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Constructor functions for common error kinds

// NewUnknownPropertyError reports a simplified property name missing from the
// resolver table. Non-fatal: callers decide whether to ignore or reject.
func NewUnknownPropertyError(name string) *DomainError {
	return NewDomainError(ErrorTypeValidation, CodeUnknownProperty,
		fmt.Sprintf("unknown property %q", name)).
		WithDetail("property", name)
}

// NewInvalidValueError reports a value that does not match its grammar family.
func NewInvalidValueError(property string, value interface{}) *DomainError {
	return NewDomainError(ErrorTypeValidation, CodeInvalidValueFormat,
		fmt.Sprintf("invalid value for %q", property)).
		WithDetail("property", property).
		WithDetail("value", value)
}

// NewOutOfRangeError reports a numeric value outside its declared min/max.
func NewOutOfRangeError(property string, value, min, max float64) *DomainError {
	return NewDomainError(ErrorTypeValidation, CodeOutOfRange,
		fmt.Sprintf("value for %q is out of range", property)).
		WithDetail("property", property).
		WithDetail("value", value).
		WithDetail("min", min).
		WithDetail("max", max)
}

// NewParentNotFoundError reports a tree-insert target id that does not exist.
func NewParentNotFoundError(parentID string) *DomainError {
	return NewDomainError(ErrorTypeNotFound, CodeParentNotFound,
		fmt.Sprintf("parent element %q not found in tree", parentID)).
		WithDetail("parent_id", parentID)
}

// NewEncodingFailureError reports a canonical value that cannot be serialized.
// Always an internal defect, never user-caused.
func NewEncodingFailureError(detail string) *DomainError {
	return NewDomainError(ErrorTypeInternal, CodeEncodingFailure,
		"canonical value cannot be serialized: "+detail)
}

// NewDocumentNotFoundError reports a missing document in the content store.
func NewDocumentNotFoundError(documentID string) *DomainError {
	return NewDomainError(ErrorTypeNotFound, "DOCUMENT_NOT_FOUND",
		fmt.Sprintf("document %q does not exist", documentID)).
		WithDetail("document_id", documentID)
}

// NewStoreError wraps a content-store failure.
func NewStoreError(operation string, err error) *DomainError {
	return NewDomainError(ErrorTypeStore, "STORE_OPERATION_FAILED",
		fmt.Sprintf("content store operation %q failed", operation)).
		WithCause(err)
}

// NewUnknownElementTypeError reports a simplified element tag with no schema.
func NewUnknownElementTypeError(tag string) *DomainError {
	return NewDomainError(ErrorTypeValidation, CodeUnknownElementType,
		fmt.Sprintf("unknown element type %q", tag)).
		WithDetail("element_type", tag)
}

// Helper functions

// IsDomainError checks if an error is a DomainError
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts a DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == errType
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if domainErr := GetDomainError(err); domainErr != nil {
		domainErr.Message = fmt.Sprintf("%s: %s", message, domainErr.Message)
		return domainErr
	}

	return NewDomainError(ErrorTypeInternal, "INTERNAL_ERROR", message).WithCause(err)
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}
