package handler

import (
	"fmt"
	"net/http"
	"testing"

	partnerapp "github.com/erp/crm/internal/application/partner"
	"github.com/erp/crm/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeHandler_Lifecycle(t *testing.T) {
	engine := newTestAPI(t)

	w := doRequest(engine, http.MethodPost, "/api/employees", map[string]any{
		"firstname": "John",
		"lastname":  "Smith",
		"email":     "John.Smith@Example.com",
		"position":  "Accountant",
		"salary":    "3200.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	john := decode[partnerapp.EmployeeResponse](t, w)
	assert.Equal(t, "john.smith@example.com", john.Email)
	assert.True(t, decimal.RequireFromString("3200.50").Equal(john.Salary))

	path := fmt.Sprintf("/api/employees/%d", john.ID)

	w = doRequest(engine, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John Smith", decode[partnerapp.EmployeeResponse](t, w).FullName)

	// PUT replaces every field
	w = doRequest(engine, http.MethodPut, path, map[string]any{
		"firstname": "Johnny",
		"lastname":  "Smith",
		"email":     "johnny@example.com",
		"salary":    "4000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[partnerapp.EmployeeResponse](t, w)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Nil(t, updated.Position)

	w = doRequest(engine, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]partnerapp.EmployeeResponse](t, w), 1)

	require.Equal(t, http.StatusNoContent, doRequest(engine, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(engine, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(engine, http.MethodDelete, path, nil).Code)
}

func TestEmployeeHandler_Errors(t *testing.T) {
	engine := newTestAPI(t)
	body := map[string]any{"firstname": "John", "lastname": "Smith", "email": "john@example.com", "salary": "100"}
	require.Equal(t, http.StatusCreated, doRequest(engine, http.MethodPost, "/api/employees", body).Code)

	t.Run("duplicate email", func(t *testing.T) {
		w := doRequest(engine, http.MethodPost, "/api/employees", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Employee with email already exists: john@example.com", decodeError(t, w).Message)
	})

	t.Run("negative salary", func(t *testing.T) {
		w := doRequest(engine, http.MethodPost, "/api/employees", map[string]any{
			"firstname": "Jane", "lastname": "Doe", "email": "jane@example.com", "salary": "-1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.MsgValidationFailed, resp.Message)
		assert.Equal(t, []string{"salary: Salary must not be negative"}, resp.Details)
	})

	t.Run("negative salary on replace", func(t *testing.T) {
		w := doRequest(engine, http.MethodPut, "/api/employees/1", map[string]any{
			"firstname": "John", "lastname": "Smith", "email": "john@example.com", "salary": "-5",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"salary: Salary must not be negative"}, decodeError(t, w).Details)
	})

	t.Run("unknown employee", func(t *testing.T) {
		w := doRequest(engine, http.MethodGet, "/api/employees/42", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee not found with id: 42", decodeError(t, w).Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		w := doRequest(engine, http.MethodPut, "/api/employees/x", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.MsgInvalidID, decodeError(t, w).Message)
	})
}
