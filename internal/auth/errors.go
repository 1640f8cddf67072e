package auth

import (
	"net/http"

	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	passwordTooLong        = "PASSWORD_TOO_LONG"
)

var (
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrPasswordTooLong        = sharedError.NewDomainError(passwordTooLong)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "Adresse e-mail ou mot de passe incorrect.",
	})

	// bcrypt ne lit que 72 octets; la validation compte des caractères
	sharedError.RegisterDomainErrorResponse(passwordTooLong, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-004",
		Message: "Le mot de passe ne doit pas dépasser 72 octets.",
	})
}
