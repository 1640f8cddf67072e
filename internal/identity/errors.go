package identity

import (
	"errors"
	"net/http"

	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

const (
	malformedCode  = "MALFORMED_IDENTITY_CODE"  // errInfo
	unknownVariant = "UNKNOWN_IDENTITY_VARIANT" // errInfo
	codeExhausted  = "IDENTITY_CODE_EXHAUSTED"  // errInfo
)

var (
	ErrMalformedCode      = sharedError.NewDomainError(malformedCode)
	ErrUnknownVariant     = sharedError.NewDomainError(unknownVariant)
	ErrCodeSpaceExhausted = sharedError.NewDomainError(codeExhausted)

	ErrInvalidAttributes = errors.New("identity: attributes do not fit the code layout")
)

func init() {
	sharedError.RegisterDomainErrorResponse(malformedCode, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CODE-001",
		Message: "Code d'identification invalide.",
	})

	sharedError.RegisterDomainErrorResponse(unknownVariant, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CODE-002",
		Message: "Type de code inconnu.",
	})

	sharedError.RegisterDomainErrorResponse(codeExhausted, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CODE-003",
		Message: "Impossible d'attribuer un code unique, veuillez réessayer.",
	})
}
