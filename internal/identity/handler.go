package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
	"github.com/taalentio/talent-api/internal/shared/handler"
)

type CodeHandler struct{}

func NewCodeHandler() *CodeHandler {
	return &CodeHandler{}
}

// Decode serves GET /codes/:variant/:code.
func (h *CodeHandler) Decode(c *gin.Context) {
	variant, err := ParseVariant(c.Param("variant"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	decoded, err := Decode(variant, c.Param("code"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, decoded)
}

func respondDomainError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}
	handler.RespondError(c, err, sharedError.InternalServerError)
}
