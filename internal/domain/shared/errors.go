package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field is the JSON name of the offending field, set for validation errors
	Field string `json:"field,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Detail renders the error as "<field>: <message>" when a field is known
func (e *DomainError) Detail() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrNotFound) matches any not-found error.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewFieldError creates a validation error for a single field
func NewFieldError(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Field:   field,
	}
}

// Error codes
const (
	CodeNotFound       = "NOT_FOUND"
	CodeBusinessRule   = "BUSINESS_RULE"
	CodeValidation     = "VALIDATION"
	CodeDuplicateEntry = "DUPLICATE_ENTRY"
	CodeDataIntegrity  = "DATA_INTEGRITY"
)

// Common domain errors
var (
	ErrNotFound       = NewDomainError(CodeNotFound, "Resource not found")
	ErrBusinessRule   = NewDomainError(CodeBusinessRule, "Business rule violated")
	ErrInvalidInput   = NewDomainError(CodeValidation, "Invalid input provided")
	ErrDuplicateEntry = NewDomainError(CodeDuplicateEntry, "Duplicate entry found")
	ErrDataIntegrity  = NewDomainError(CodeDataIntegrity, "Data integrity violation")
)

// NotFoundError builds a not-found error for an entity id
func NotFoundError(entity string, id uint) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found with id: %d", entity, id))
}

// BusinessRuleError builds a business-rule violation
func BusinessRuleError(format string, args ...any) *DomainError {
	return NewDomainError(CodeBusinessRule, fmt.Sprintf(format, args...))
}
