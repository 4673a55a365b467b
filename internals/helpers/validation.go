// file: internals/helpers/validation.go
package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation is one field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationFailed carries the violation list through the error channel.
// It maps to HTTP 400.
type ValidationFailed struct {
	Violations []Violation
}

func (e *ValidationFailed) Error() string { return "Validation failed" }

var (
	firstNameRe = regexp.MustCompile(`^[a-zA-Z0-9 .-]*$`)
	lastNameRe  = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)
	mobileRe    = regexp.MustCompile(`^\d{8}$`)
)

// Validate is the shared validator instance. Field names in violations
// come from the json tag so they match the wire format.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("first_name_chars", func(fl validator.FieldLevel) bool {
		return firstNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("last_name_chars", func(fl validator.FieldLevel) bool {
		return lastNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mobile8", func(fl validator.FieldLevel) bool {
		return mobileRe.MatchString(fl.Field().String())
	})

	return v
}

// Default message per failed tag; DTOs override per "field.tag" key to
// keep the exact wording of the old validators.
func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must be specified", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s has non-alphanumeric characters", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "first_name_chars", "last_name_chars":
		return fmt.Sprintf("%s has non-alphanumeric characters", fe.Field())
	case "mobile8":
		return "Mobile number must be exactly 8 digits"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ViolationsFromError turns a validator error into an ordered violation
// list. Order follows struct field declaration order. A nil error yields
// an empty list, never nil.
func ViolationsFromError(err error, overrides map[string]string) []Violation {
	out := []Violation{}
	if err == nil {
		return out
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out = append(out, Violation{Field: "_", Message: err.Error()})
		return out
	}
	for _, fe := range ve {
		msg := ""
		if overrides != nil {
			msg = overrides[fe.Field()+"."+fe.Tag()]
		}
		if msg == "" {
			msg = defaultMessage(fe)
		}
		out = append(out, Violation{Field: fe.Field(), Message: msg})
	}
	return out
}
