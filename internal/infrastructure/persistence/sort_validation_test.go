package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"desc lowercase returns DESC", "desc", "DESC"},
		{"invalid value returns DESC", "INVALID", "DESC"},
		{"sql injection attempt returns DESC", "ASC; DROP TABLE customers;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns default", "", "created_at"},
		{"column name returns column", "lastname", "lastname"},
		{"api name is case insensitive", "firstName", "firstname"},
		{"camel case timestamp maps to column", "createdAt", "created_at"},
		{"whitespace around valid field", "  email  ", "email"},
		{"unknown field returns default", "salary", "created_at"},
		{"sql injection attempt returns default", "id; DROP TABLE customers;--", "created_at"},
		{"quotes injection returns default", "email'--", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, CustomerSortFields, "created_at"))
		})
	}
}

func TestCustomerSortFields_MapToColumns(t *testing.T) {
	columns := map[string]bool{
		"id": true, "created_at": true, "updated_at": true,
		"firstname": true, "lastname": true, "email": true,
	}
	for key, column := range CustomerSortFields {
		assert.True(t, columns[column], "%s maps to unknown column %s", key, column)
	}
}
