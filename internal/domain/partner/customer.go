package partner

import (
	"strings"

	"github.com/erp/crm/internal/domain/shared"
)

// Customer represents a customer record.
// Email is unique among active customers only; an inactive customer is
// retained for history and its email may be reused.
type Customer struct {
	shared.AuditedEntity
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Address   *string
}

// NewCustomer creates an active customer with normalized contact fields
func NewCustomer(firstName, lastName, email string, phone, address *string, actor string) (*Customer, error) {
	c := &Customer{
		AuditedEntity: shared.NewAuditedEntity(actor),
		FirstName:     NormalizeText(firstName),
		LastName:      NormalizeText(lastName),
		Email:         NormalizeEmail(email),
		Phone:         OptionalText(phone),
		Address:       OptionalText(address),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the record invariants
func (c *Customer) Validate() error {
	if err := validateName(FieldFirstName, "Firstname", c.FirstName, NameMinLength, NameMaxLength); err != nil {
		return err
	}
	if err := validateName(FieldLastName, "Lastname", c.LastName, NameMinLength, NameMaxLength); err != nil {
		return err
	}
	if err := validateEmail(c.Email, true); err != nil {
		return err
	}
	if err := validatePhone(c.Phone); err != nil {
		return err
	}
	return validateOptional(FieldAddress, "Address", c.Address, AddressMaxLength)
}

// FullName joins first and last name with a single space
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasValidPhone reports whether the customer has a phone that matches the
// international number pattern
func (c *Customer) HasValidPhone() bool {
	return c.Phone != nil && IsValidPhone(*c.Phone)
}
