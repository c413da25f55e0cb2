package partner

import (
	"fmt"

	"github.com/erp/crm/internal/domain/shared"
)

// JSON names of validated fields
const (
	FieldFirstName   = "firstname"
	FieldLastName    = "lastname"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldPosition    = "position"
	FieldSalary      = "salary"
	FieldName        = "name"
	FieldContactName = "contactName"
)

func invalidField(field, message string) error {
	return shared.NewFieldError(field, message)
}

func invalidFieldf(field, format string, args ...any) error {
	return shared.NewFieldError(field, fmt.Sprintf(format, args...))
}
