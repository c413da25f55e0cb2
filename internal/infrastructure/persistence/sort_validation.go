package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]string, defaultField string) string {
	trimmed := strings.ToLower(strings.TrimSpace(sortField))
	if column, ok := allowedFields[trimmed]; ok {
		return column
	}
	return defaultField
}

// CustomerSortFields maps accepted sort keys to customer columns.
// Both API field names and column names are accepted.
var CustomerSortFields = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"createdat":  "created_at",
	"updated_at": "updated_at",
	"updatedat":  "updated_at",
	"firstname":  "firstname",
	"lastname":   "lastname",
	"email":      "email",
}
