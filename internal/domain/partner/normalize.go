package partner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailCheck   = validator.New()
)

// Field length limits
const (
	NameMinLength     = 2
	NameMaxLength     = 50
	EmailMaxLength    = 100
	PhoneMaxLength    = 20
	AddressMaxLength  = 200
	PositionMaxLength = 100
	CompanyMinLength  = 2
	CompanyMaxLength  = 100
)

// NormalizeText trims surrounding whitespace. The characters themselves are
// stored as sent.
func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsBlank reports whether s is empty after trimming
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OptionalText returns nil for blank input, otherwise the trimmed value
func OptionalText(s *string) *string {
	if s == nil || IsBlank(*s) {
		return nil
	}
	v := NormalizeText(*s)
	return &v
}

// IsValidPhone reports whether phone matches the international number pattern
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// IsValidEmail reports whether email is well formed, using the same grammar
// as the request binding
func IsValidEmail(email string) bool {
	return emailCheck.Var(email, "email") == nil
}

// TextLength counts characters, not bytes
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}

func validateName(field, label, value string, minLen, maxLen int) error {
	if IsBlank(value) {
		return invalidField(field, label+" is required")
	}
	if n := TextLength(value); n < minLen || n > maxLen {
		return invalidFieldf(field, "%s must be between %d and %d characters", label, minLen, maxLen)
	}
	return nil
}

func validateOptional(field, label string, value *string, maxLen int) error {
	if value != nil && TextLength(*value) > maxLen {
		return invalidFieldf(field, "%s must not exceed %d characters", label, maxLen)
	}
	return nil
}

func validatePhone(phone *string) error {
	if phone == nil {
		return nil
	}
	if err := validateOptional(FieldPhone, "Phone", phone, PhoneMaxLength); err != nil {
		return err
	}
	if !IsValidPhone(*phone) {
		return invalidField(FieldPhone, "Invalid phone format")
	}
	return nil
}

func validateEmail(email string, required bool) error {
	if email == "" {
		if required {
			return invalidField(FieldEmail, "Email is required")
		}
		return nil
	}
	if TextLength(email) > EmailMaxLength {
		return invalidFieldf(FieldEmail, "Email must not exceed %d characters", EmailMaxLength)
	}
	if !IsValidEmail(email) {
		return invalidField(FieldEmail, "Invalid email format")
	}
	return nil
}
