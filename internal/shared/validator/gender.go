package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateGender accepts M, F or N in any case
func ValidateGender(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "M", "F", "N":
		return true
	default:
		return false
	}
}
