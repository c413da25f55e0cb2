package partner

import "github.com/erp/crm/internal/domain/shared"

// Supplier represents a company the business buys from.
// Name is unique, case-insensitively, among active suppliers.
type Supplier struct {
	shared.AuditedEntity
	Name        string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
}

// NewSupplier creates an active supplier
func NewSupplier(name string, contactName, email, phone, address *string, actor string) (*Supplier, error) {
	s := &Supplier{
		AuditedEntity: shared.NewAuditedEntity(actor),
		Name:          NormalizeText(name),
		ContactName:   OptionalText(contactName),
		Email:         OptionalEmail(email),
		Phone:         OptionalText(phone),
		Address:       OptionalText(address),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// OptionalEmail returns nil for blank input, otherwise the normalized email
func OptionalEmail(s *string) *string {
	if s == nil || IsBlank(*s) {
		return nil
	}
	v := NormalizeEmail(*s)
	return &v
}

// Validate checks the record invariants
func (s *Supplier) Validate() error {
	if err := validateName(FieldName, "Name", s.Name, CompanyMinLength, CompanyMaxLength); err != nil {
		return err
	}
	if err := validateOptional(FieldContactName, "Contact name", s.ContactName, CompanyMaxLength); err != nil {
		return err
	}
	if s.Email != nil {
		if err := validateEmail(*s.Email, false); err != nil {
			return err
		}
	}
	if err := validatePhone(s.Phone); err != nil {
		return err
	}
	return validateOptional(FieldAddress, "Address", s.Address, AddressMaxLength)
}
