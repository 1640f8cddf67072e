package cinema

import (
	"net/http"

	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

const (
	cinemaTalentNotFound      = "CINEMA_TALENT_NOT_FOUND"      // errInfo
	cinemaTalentAlreadyExists = "CINEMA_TALENT_ALREADY_EXISTS" // errInfo
)

var (
	ErrCinemaTalentNotFound      = sharedError.NewDomainError(cinemaTalentNotFound)
	ErrCinemaTalentAlreadyExists = sharedError.NewDomainError(cinemaTalentAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(cinemaTalentNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CINEMA-001",
		Message: "Talent cinéma introuvable.",
	})

	sharedError.RegisterDomainErrorResponse(cinemaTalentAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CINEMA-002",
		Message: "Une inscription existe déjà avec cette adresse e-mail.",
	})
}
