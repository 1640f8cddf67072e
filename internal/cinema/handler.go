package cinema

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
	"github.com/taalentio/talent-api/internal/shared/handler"
)

type CinemaHandler struct {
	cinemaService *CinemaService
}

func NewCinemaHandler(cinemaService *CinemaService) *CinemaHandler {
	return &CinemaHandler{
		cinemaService: cinemaService,
	}
}

func (h *CinemaHandler) Register(c *gin.Context) {
	var request RegisterRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.cinemaService.Register(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *CinemaHandler) GetByCode(c *gin.Context) {
	response, err := h.cinemaService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
