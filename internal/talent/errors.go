package talent

import (
	"net/http"

	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

const (
	talentNotFound      = "TALENT_NOT_FOUND"      // errInfo
	talentAlreadyExists = "TALENT_ALREADY_EXISTS" // errInfo
)

var (
	ErrTalentNotFound      = sharedError.NewDomainError(talentNotFound)
	ErrTalentAlreadyExists = sharedError.NewDomainError(talentAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(talentNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TALENT-001",
		Message: "Talent introuvable.",
	})

	sharedError.RegisterDomainErrorResponse(talentAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "TALENT-002",
		Message: "Un compte existe déjà avec cette adresse e-mail.",
	})
}
