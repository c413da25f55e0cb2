package dto

import (
	"net/http"
	"time"

	"github.com/erp/crm/internal/domain/shared"
)

// Client-facing error messages
const (
	MsgValidationFailed = "Validation failed"
	MsgMalformedRequest = "Malformed request"
	MsgInvalidID        = "Invalid id"
	MsgDuplicateEntry   = "Duplicate entry found"
	MsgDataIntegrity    = "Data integrity violation"
	MsgDuplicateRequest = "Duplicate request"
	MsgInternal         = "Internal server error"
	MsgUnauthorized     = "Authentication required"
	MsgRequestTooLarge  = "Request body exceeds maximum allowed size"
	MsgServiceUnhealthy = "Service unavailable"
	MsgRouteNotFound    = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:       http.StatusNotFound,
	shared.CodeBusinessRule:   http.StatusBadRequest,
	shared.CodeValidation:     http.StatusBadRequest,
	shared.CodeDuplicateEntry: http.StatusConflict,
	shared.CodeDataIntegrity:  http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Message   string   `json:"message" example:"Customer not found with id: 42"`
	Status    int      `json:"status" example:"404"`
	Timestamp string   `json:"timestamp" example:"2026-01-23T12:00:00Z"`
	Path      string   `json:"path" example:"/api/customers/42"`
	Details   []string `json:"details,omitempty"`
}

// NewErrorResponse creates an error body stamped with the current time
func NewErrorResponse(status int, message, path string, details ...string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      path,
		Details:   details,
	}
}
