package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	partnerapp "github.com/erp/crm/internal/application/partner"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bindDetails binds body into obj and returns the rendered validation details
func bindDetails(t *testing.T, body string, obj any) []string {
	t.Helper()
	SetupValidator()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	require.True(t, IsValidationError(err), "unexpected bind error: %v", err)
	return ValidationDetails(err, obj)
}

func TestValidation_CreateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name: "all required fields missing",
			body: `{}`,
			expected: []string{
				"firstname: Firstname is required",
				"lastname: Lastname is required",
				"email: Email is required",
			},
		},
		{
			name:     "whitespace is blank",
			body:     `{"firstname":"   ","lastname":"Perez","email":"ana@example.com"}`,
			expected: []string{"firstname: Firstname is required"},
		},
		{
			name:     "name too short after trimming",
			body:     `{"firstname":"  A  ","lastname":"Perez","email":"ana@example.com"}`,
			expected: []string{"firstname: Firstname must be between 2 and 50 characters"},
		},
		{
			name:     "name too long",
			body:     `{"firstname":"Ana","lastname":"` + strings.Repeat("x", 51) + `","email":"ana@example.com"}`,
			expected: []string{"lastname: Lastname must be between 2 and 50 characters"},
		},
		{
			name:     "invalid email",
			body:     `{"firstname":"Ana","lastname":"Perez","email":"not-an-email"}`,
			expected: []string{"email: Invalid email format"},
		},
		{
			name:     "invalid phone",
			body:     `{"firstname":"Ana","lastname":"Perez","email":"ana@example.com","phone":"call me"}`,
			expected: []string{"phone: Invalid phone format"},
		},
		{
			name:     "phone too long",
			body:     `{"firstname":"Ana","lastname":"Perez","email":"ana@example.com","phone":"+123456789012345678901"}`,
			expected: []string{"phone: Phone must not exceed 20 characters"},
		},
		{
			name:     "address too long",
			body:     `{"firstname":"Ana","lastname":"Perez","email":"ana@example.com","address":"` + strings.Repeat("a", 201) + `"}`,
			expected: []string{"address: Address must not exceed 200 characters"},
		},
		{
			name: "valid with padded email and blank phone",
			body: `{"firstname":"Zoë","lastname":"Perez","email":"  Ana@Example.com ","phone":"  "}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req partnerapp.CreateCustomerRequest
			assert.ElementsMatch(t, tt.expected, bindDetails(t, tt.body, &req))
		})
	}
}

func TestValidation_UpdateCustomerIgnoresBlankFields(t *testing.T) {
	var req partnerapp.UpdateCustomerRequest
	assert.Empty(t, bindDetails(t, `{"firstname":"   ","email":"","phone":" "}`, &req))

	var short partnerapp.UpdateCustomerRequest
	assert.Equal(t,
		[]string{"firstname: Firstname must be between 2 and 50 characters"},
		bindDetails(t, `{"firstname":"A"}`, &short),
	)
}

func TestValidation_Supplier(t *testing.T) {
	var req partnerapp.SaveSupplierRequest
	assert.Equal(t,
		[]string{"name: Name must be between 2 and 100 characters"},
		bindDetails(t, `{"name":"X"}`, &req),
	)
}

func TestValidation_EmployeeSalary(t *testing.T) {
	var negative partnerapp.SaveEmployeeRequest
	assert.Equal(t,
		[]string{"salary: Salary must not be negative"},
		bindDetails(t, `{"firstname":"John","lastname":"Smith","email":"john@example.com","salary":"-5"}`, &negative),
	)

	var zero partnerapp.SaveEmployeeRequest
	assert.Empty(t, bindDetails(t, `{"firstname":"John","lastname":"Smith","email":"john@example.com","salary":"0"}`, &zero))
}

func TestValidation_DecomposedNameLength(t *testing.T) {
	// "e" + combining acute accent is two characters
	var req partnerapp.CreateCustomerRequest
	assert.Empty(t, bindDetails(t, `{"firstname":"e\u0301","lastname":"Pe\u0301rez","email":"ana@example.com"}`, &req))
}

func TestValidationDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, ValidationDetails(assert.AnError, struct{}{}))
	assert.False(t, IsValidationError(assert.AnError))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Firstname", fieldLabel("firstname"))
	assert.Equal(t, "Email", fieldLabel("email"))
	assert.Equal(t, "ContactName", fieldLabel("contactName"))
	assert.Equal(t, "", fieldLabel(""))
}

func TestTagParam(t *testing.T) {
	tags := "notblank,trimmin=2,trimmax=50"
	assert.Equal(t, "2", tagParam(tags, "trimmin"))
	assert.Equal(t, "50", tagParam(tags, "trimmax"))
	assert.Equal(t, "", tagParam(tags, "max"))
}
