package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches international numbers with optional separators
	// Formats: +212612345678, +212 6 12 34 56 78, 0612345678
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// ValidatePhone validates a phone or WhatsApp number
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := phoneSeparators.Replace(fl.Field().String())
	return phoneRegex.MatchString(phone)
}
