package partner

import (
	"strings"

	"github.com/erp/crm/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Employee represents a staff member
type Employee struct {
	shared.AuditedEntity
	FirstName string
	LastName  string
	Email     string
	Position  *string
	Salary    decimal.Decimal
}

// NewEmployee creates an active employee
func NewEmployee(firstName, lastName, email string, position *string, salary decimal.Decimal, actor string) (*Employee, error) {
	e := &Employee{
		AuditedEntity: shared.NewAuditedEntity(actor),
		FirstName:     NormalizeText(firstName),
		LastName:      NormalizeText(lastName),
		Email:         NormalizeEmail(email),
		Position:      OptionalText(position),
		Salary:        salary,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the record invariants
func (e *Employee) Validate() error {
	if err := validateName(FieldFirstName, "Firstname", e.FirstName, NameMinLength, NameMaxLength); err != nil {
		return err
	}
	if err := validateName(FieldLastName, "Lastname", e.LastName, NameMinLength, NameMaxLength); err != nil {
		return err
	}
	if err := validateEmail(e.Email, true); err != nil {
		return err
	}
	if err := validateOptional(FieldPosition, "Position", e.Position, PositionMaxLength); err != nil {
		return err
	}
	if e.Salary.IsNegative() {
		return invalidField(FieldSalary, "Salary must not be negative")
	}
	return nil
}

// FullName joins first and last name with a single space
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
