package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("moteur de validation introuvable")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("récupération du moteur de validation échouée: %w", err)
	}

	if err := v.RegisterValidation("phone", ValidatePhone); err != nil {
		return fmt.Errorf("enregistrement du validateur phone échoué: %w", err)
	}
	if err := v.RegisterValidation("gender", ValidateGender); err != nil {
		return fmt.Errorf("enregistrement du validateur gender échoué: %w", err)
	}

	slog.Info("Validateurs communs enregistrés", "validators", "phone,gender")
	return nil
}
