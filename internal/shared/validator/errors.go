package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Seule la première erreur est renvoyée au client
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Veuillez remplir les champs obligatoires."
	case "email":
		return "Le format de l'adresse e-mail est invalide."
	case "min":
		return fmt.Sprintf("Au moins %s caractères sont requis.", fe.Param())
	case "max":
		return fmt.Sprintf("%s caractères maximum.", fe.Param())
	case "phone":
		return "Le numéro de téléphone est invalide. (+212612345678)"
	case "gender":
		return "Le genre doit être M, F ou N."
	default:
		return fmt.Sprintf("Le champ '%s' est invalide.", fe.Field())
	}
}
