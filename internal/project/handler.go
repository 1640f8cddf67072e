package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
	"github.com/taalentio/talent-api/internal/shared/handler"
)

type ProjectHandler struct {
	projectService *ProjectService
}

func NewProjectHandler(projectService *ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var request CreateProjectRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.projectService.CreateProject(c.Request.Context(), &request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProjectHandler) AssignTalent(c *gin.Context) {
	projectID, ok := requireProjectID(c)
	if !ok {
		return
	}

	var request AssignTalentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.projectService.AssignTalent(c.Request.Context(), projectID, &request)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *ProjectHandler) ListTalents(c *gin.Context) {
	projectID, ok := requireProjectID(c)
	if !ok {
		return
	}

	response, err := h.projectService.ListTalents(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// requireProjectID parses the :id path parameter; ids start at 1.
func requireProjectID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, ErrInvalidProject)
		return 0, false
	}
	return uint32(id), true
}

func respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
