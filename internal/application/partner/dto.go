package partner

import (
	"github.com/erp/crm/internal/domain/partner"
	"github.com/erp/crm/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	FirstName string  `json:"firstname" binding:"notblank,trimmin=2,trimmax=50" example:"Ana"`
	LastName  string  `json:"lastname" binding:"notblank,trimmin=2,trimmax=50" example:"Perez"`
	Email     string  `json:"email" binding:"notblank,trimemail,trimmax=100" example:"ana@example.com"`
	Phone     *string `json:"phone" binding:"omitempty,trimmax=20,phone" example:"+34600111222"`
	Address   *string `json:"address" binding:"omitempty,trimmax=200" example:"Calle Mayor 1, Madrid"`
}

// UpdateCustomerRequest represents a partial update of a customer.
// A nil or blank field leaves the stored value untouched.
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstname" binding:"omitempty,trimmin=2,trimmax=50" example:"Ana"`
	LastName  *string `json:"lastname" binding:"omitempty,trimmin=2,trimmax=50" example:"Pérez"`
	Email     *string `json:"email" binding:"omitempty,trimemail,trimmax=100" example:"ana.perez@example.com"`
	Phone     *string `json:"phone" binding:"omitempty,trimmax=20,phone" example:"+34600111333"`
	Address   *string `json:"address" binding:"omitempty,trimmax=200" example:"Gran Via 2, Madrid"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uint     `json:"id"`
	FirstName string   `json:"firstname"`
	LastName  string   `json:"lastname"`
	FullName  string   `json:"fullName"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Address   *string  `json:"address"`
	Active    bool     `json:"active"`
	CreatedAt DateTime `json:"createdAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	UpdatedAt DateTime `json:"updatedAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	CreatedBy string   `json:"createdBy"`
	UpdatedBy string   `json:"updatedBy"`
}

// CustomerListFilter represents paging options for customer lists
type CustomerListFilter struct {
	Search    string `form:"q"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ToSharedFilter converts the list filter to a domain filter with defaults applied
func (f CustomerListFilter) ToSharedFilter() shared.Filter {
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.Size,
		OrderBy:  f.SortBy,
		OrderDir: f.SortOrder,
		Search:   f.Search,
	}.Normalize()
}

// CountResponse reports a number of records
type CountResponse struct {
	Count int64 `json:"count"`
}

// ExistsResponse reports whether a record exists
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// ToCustomerEntity builds a new, unsaved customer from a create request.
// Audit fields are stamped by the service. Returns nil for nil input.
func ToCustomerEntity(req *CreateCustomerRequest) *partner.Customer {
	if req == nil {
		return nil
	}
	return &partner.Customer{
		AuditedEntity: shared.AuditedEntity{Active: true},
		FirstName:     partner.NormalizeText(req.FirstName),
		LastName:      partner.NormalizeText(req.LastName),
		Email:         partner.NormalizeEmail(req.Email),
		Phone:         partner.OptionalText(req.Phone),
		Address:       partner.OptionalText(req.Address),
	}
}

// MergeCustomer applies the non-blank fields of req onto c and reports
// whether any stored value changed. Blank fields never clear a value.
func MergeCustomer(c *partner.Customer, req *UpdateCustomerRequest) bool {
	if c == nil || req == nil {
		return false
	}
	changed := false
	if v, ok := presentText(req.FirstName); ok && v != c.FirstName {
		c.FirstName = v
		changed = true
	}
	if v, ok := presentText(req.LastName); ok && v != c.LastName {
		c.LastName = v
		changed = true
	}
	if req.Email != nil && !partner.IsBlank(*req.Email) {
		if v := partner.NormalizeEmail(*req.Email); v != c.Email {
			c.Email = v
			changed = true
		}
	}
	if v, ok := presentText(req.Phone); ok && (c.Phone == nil || *c.Phone != v) {
		c.Phone = &v
		changed = true
	}
	if v, ok := presentText(req.Address); ok && (c.Address == nil || *c.Address != v) {
		c.Address = &v
		changed = true
	}
	return changed
}

func presentText(s *string) (string, bool) {
	if s == nil || partner.IsBlank(*s) {
		return "", false
	}
	return partner.NormalizeText(*s), true
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Active:    c.Active,
		CreatedAt: NewDateTime(c.CreatedAt),
		UpdatedAt: NewDateTime(c.UpdatedAt),
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
	}
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// =============================================================================
// Employee DTOs
// =============================================================================

// SaveEmployeeRequest represents a request to create or replace an employee
type SaveEmployeeRequest struct {
	FirstName string          `json:"firstname" binding:"notblank,trimmin=2,trimmax=50" example:"John"`
	LastName  string          `json:"lastname" binding:"notblank,trimmin=2,trimmax=50" example:"Smith"`
	Email     string          `json:"email" binding:"notblank,trimemail,trimmax=100" example:"john.smith@example.com"`
	Position  *string         `json:"position" binding:"omitempty,trimmax=100" example:"Accountant"`
	Salary    decimal.Decimal `json:"salary" binding:"nonnegative" swaggertype:"string" example:"3200.00"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uint            `json:"id"`
	FirstName string          `json:"firstname"`
	LastName  string          `json:"lastname"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email"`
	Position  *string         `json:"position"`
	Salary    decimal.Decimal `json:"salary" swaggertype:"string" example:"3200.00"`
	Active    bool            `json:"active"`
	CreatedAt DateTime        `json:"createdAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	UpdatedAt DateTime        `json:"updatedAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	CreatedBy string          `json:"createdBy"`
	UpdatedBy string          `json:"updatedBy"`
}

// ToEmployeeResponse converts a domain Employee to EmployeeResponse
func ToEmployeeResponse(e *partner.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Email:     e.Email,
		Position:  e.Position,
		Salary:    e.Salary,
		Active:    e.Active,
		CreatedAt: NewDateTime(e.CreatedAt),
		UpdatedAt: NewDateTime(e.UpdatedAt),
		CreatedBy: e.CreatedBy,
		UpdatedBy: e.UpdatedBy,
	}
}

// ToEmployeeResponses converts a slice of domain Employees
func ToEmployeeResponses(employees []partner.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}

// =============================================================================
// Supplier DTOs
// =============================================================================

// SaveSupplierRequest represents a request to create or replace a supplier
type SaveSupplierRequest struct {
	Name        string  `json:"name" binding:"notblank,trimmin=2,trimmax=100" example:"Acme Supplies"`
	ContactName *string `json:"contactName" binding:"omitempty,trimmax=100" example:"Jane Doe"`
	Email       *string `json:"email" binding:"omitempty,trimemail,trimmax=100" example:"sales@acme.example"`
	Phone       *string `json:"phone" binding:"omitempty,trimmax=20,phone" example:"+15550001111"`
	Address     *string `json:"address" binding:"omitempty,trimmax=200" example:"1 Industrial Way"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	ContactName *string  `json:"contactName"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	Active      bool     `json:"active"`
	CreatedAt   DateTime `json:"createdAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	UpdatedAt   DateTime `json:"updatedAt" swaggertype:"string" example:"2026-01-23 12:00:00"`
	CreatedBy   string   `json:"createdBy"`
	UpdatedBy   string   `json:"updatedBy"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		Active:      s.Active,
		CreatedAt:   NewDateTime(s.CreatedAt),
		UpdatedAt:   NewDateTime(s.UpdatedAt),
		CreatedBy:   s.CreatedBy,
		UpdatedBy:   s.UpdatedBy,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
