package project

import (
	"net/http"

	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

const (
	projectNotFound = "PROJECT_NOT_FOUND"  // errInfo
	invalidProject  = "INVALID_PROJECT_ID" // errInfo
)

var (
	ErrProjectNotFound = sharedError.NewDomainError(projectNotFound)
	ErrInvalidProject  = sharedError.NewDomainError(invalidProject)
)

func init() {
	sharedError.RegisterDomainErrorResponse(projectNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "PROJECT-001",
		Message: "Projet introuvable.",
	})

	sharedError.RegisterDomainErrorResponse(invalidProject, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PROJECT-002",
		Message: "Identifiant de projet invalide.",
	})
}
