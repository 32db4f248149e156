package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/job-board-api/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Indian mobile numbers: ten digits, first digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func init() {
	// Report fields by their json name so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var lower, upper, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return lower && upper && digit
	})
}

// messages maps json field name -> validate tag -> client-facing message.
var messages = map[string]map[string]string{
	"name": {
		"required": "Company name is required",
		"min":      "Company name should have at least 4 characters",
		"max":      "Company name should not exceed 50 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Email must be a valid email address",
	},
	"phone": {
		"required": "Phone number is required",
		"inphone":  "Phone number must be a valid 10-digit Indian number starting with 6, 7, 8, or 9",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password should have at least 8 characters",
		"password": "Password must contain at least one uppercase letter, one lowercase letter, and one number",
	},
	"employeeSize": {
		"required": "Employee size is required",
		"min":      "Employee size must be at least 1",
		"max":      "Employee size should not exceed 10,000",
	},
}

// Struct validates the given struct using its validate tags. Every violated
// rule is reported; validation never stops at the first failure. On failure
// it returns a *domain.ValidationError with one message per violation.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, messageFor(fe))
	}
	return &domain.ValidationError{Messages: msgs}
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag())
}
