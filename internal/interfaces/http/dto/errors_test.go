package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{shared.CodeNotFound, http.StatusNotFound},
		{shared.CodeBusinessRule, http.StatusBadRequest},
		{shared.CodeValidation, http.StatusBadRequest},
		{shared.CodeDuplicateEntry, http.StatusConflict},
		{shared.CodeDataIntegrity, http.StatusConflict},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(http.StatusBadRequest, MsgValidationFailed, "/api/customers", "email: Invalid email format")

	assert.Equal(t, MsgValidationFailed, resp.Message)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "/api/customers", resp.Path)
	assert.Equal(t, []string{"email: Invalid email format"}, resp.Details)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestErrorResponse_OmitsEmptyDetails(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse(http.StatusNotFound, "Customer not found with id: 1", "/api/customers/1"))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.NotContains(t, raw, "details")
	assert.Equal(t, float64(404), raw["status"])
	assert.Equal(t, "/api/customers/1", raw["path"])
}
