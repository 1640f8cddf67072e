package talent

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/taalentio/talent-api/internal/shared/context"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
	"github.com/taalentio/talent-api/internal/shared/handler"
)

type TalentHandler struct {
	talentService *TalentService
}

func NewTalentHandler(talentService *TalentService) *TalentHandler {
	return &TalentHandler{
		talentService: talentService,
	}
}

func (h *TalentHandler) GetProfile(c *gin.Context) {
	talentID, ok := sharedContext.RequireTalentID(c)
	if !ok {
		return
	}

	response, err := h.talentService.GetProfile(c.Request.Context(), talentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TalentHandler) UpdateProfile(c *gin.Context) {
	talentID, ok := sharedContext.RequireTalentID(c)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.talentService.UpdateProfile(c.Request.Context(), talentID, &request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TalentHandler) GetPublicCard(c *gin.Context) {
	response, err := h.talentService.GetPublicCard(c.Request.Context(), c.Param("code"))
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
