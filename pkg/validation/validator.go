package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PasswordSpecialChars is the fixed special-character set a password
// must draw from.
const PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

const (
	PasswordMinLen = 8
	PasswordMaxLen = 16
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the userpwd rule: 8-16 chars with at least one uppercase
//   letter and one character from PasswordSpecialChars.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("userpwd", validPassword)
	}
}

// validPassword enforces the registration/password-update rule.
func validPassword(fl validator.FieldLevel) bool {
	return PasswordOK(fl.Field().String())
}

// PasswordOK reports whether pwd satisfies the password policy.
func PasswordOK(pwd string) bool {
	if len(pwd) < PasswordMinLen || len(pwd) > PasswordMaxLen {
		return false
	}
	hasUpper := false
	hasSpecial := false
	for _, r := range pwd {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		}
		if strings.ContainsRune(PasswordSpecialChars, r) {
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "userpwd":
		return fmt.Sprintf("must be %d-%d characters with at least one uppercase letter and one of %s",
			PasswordMinLen, PasswordMaxLen, PasswordSpecialChars)
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "min":
		if isNumberKind(kind) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	}
	return "is invalid"
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
