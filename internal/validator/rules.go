package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Local 10-digit mobile format: leading digit 6-9, nine more digits.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips separators before pattern matching so inputs
// like "98765 43210" validate.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidPhone reports whether the value is a valid local mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

// DOBLayout is the calendar-date wire format for dates of birth.
const DOBLayout = "2006-01-02"

// Adult reports whether the date of birth (DOBLayout) is at least 18
// years before now. An unparsable date is not adult.
func Adult(dob string) bool {
	parsed, err := time.Parse(DOBLayout, strings.TrimSpace(dob))
	if err != nil {
		return false
	}
	return !parsed.After(time.Now().AddDate(-18, 0, 0))
}

func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("profilephone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("adult", func(fl validator.FieldLevel) bool {
		return Adult(fl.Field().String())
	})
}
