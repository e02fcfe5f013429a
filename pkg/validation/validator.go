package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// password minimum length for registration
		v.RegisterAlias("pwd", "min=6")
	}
}

var validate = validator.New()

// IsEmail reports whether s has a plausible local@domain.tld shape.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// RegisterMessage translates a registration binding error into the single
// user-facing message for it. Presence failures win over shape failures, and
// email shape wins over password length, matching the order the fields are
// checked in.
func RegisterMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msg := ""
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return "All fields are required"
		case "email":
			if msg == "" {
				msg = "Invalid email format"
			}
		case "pwd", "min":
			if msg == "" {
				msg = "Password must be at least 6 characters long"
			}
		}
	}
	if msg == "" {
		msg = "Invalid request body"
	}
	return msg
}
