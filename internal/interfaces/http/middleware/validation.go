package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/erp/crm/internal/domain/partner"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var setupOnce sync.Once

// SetupValidator configures gin's validator with JSON field names and the
// trimming tags used by the request DTOs:
//
//	notblank     value is not empty after trimming
//	trimmin=N    at least N characters after trimming
//	trimmax=N    at most N characters after trimming
//	trimemail    well-formed email after trimming
//	phone        international phone number
//	nonnegative  decimal amount that is zero or positive
//
// All tags except notblank accept blank values, which are ignored downstream.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
			return !partner.IsBlank(fl.Field().String())
		})
		mustRegister(v, "trimmin", trimmedLength(func(n, limit int) bool { return n >= limit }))
		mustRegister(v, "trimmax", trimmedLength(func(n, limit int) bool { return n <= limit }))
		mustRegister(v, "trimemail", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return s == "" || v.Var(s, "email") == nil
		})
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return partner.IsBlank(s) || partner.IsValidPhone(s)
		})
		mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(decimal.Decimal)
			return ok && !d.IsNegative()
		})
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func trimmedLength(cmp func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		s := strings.TrimSpace(fl.Field().String())
		if s == "" {
			return true
		}
		return cmp(utf8.RuneCountInString(s), limit)
	}
}

// IsValidationError reports whether err came from struct validation
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// ValidationDetails renders validation errors as "<field>: <message>".
// obj is the struct that was validated; its binding tags complete the
// length messages.
func ValidationDetails(err error, obj any) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]string, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, e.Field()+": "+validationMessage(e, bindingTag(obj, e.StructField())))
	}
	return details
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError, tags string) string {
	label := fieldLabel(e.Field())
	switch e.Tag() {
	case "notblank", "required":
		return label + " is required"
	case "trimmin", "trimmax":
		lo, hi := tagParam(tags, "trimmin"), tagParam(tags, "trimmax")
		switch {
		case lo != "" && hi != "":
			return fmt.Sprintf("%s must be between %s and %s characters", label, lo, hi)
		case e.Tag() == "trimmax":
			return fmt.Sprintf("%s must not exceed %s characters", label, e.Param())
		default:
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
	case "trimemail", "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone format"
	case "nonnegative":
		return label + " must not be negative"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	default:
		return label + " is invalid"
	}
}

// fieldLabel upper-cases the first letter of a JSON field name
func fieldLabel(field string) string {
	return cases.Title(language.Und, cases.NoLower).String(field)
}

func bindingTag(obj any, field string) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return ""
	}
	return f.Tag.Get("binding")
}

func tagParam(tags, name string) string {
	for _, part := range strings.Split(tags, ",") {
		if v, ok := strings.CutPrefix(part, name+"="); ok {
			return v
		}
	}
	return ""
}
