package context

import (
	"net/http"
	"strconv"

	"github.com/taalentio/talent-api/internal/shared/logger"

	"github.com/gin-gonic/gin"
	sharedError "github.com/taalentio/talent-api/internal/shared/error"
)

// Context keys for storing talent authentication information
const (
	TalentIDKey    = "talent_id"
	TalentCodeKey  = "talent_code"
	TalentEmailKey = "talent_email"
)

func GetTalentID(c *gin.Context) (uint32, bool) {
	talentID, exists := c.Get(TalentIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := talentID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// RequireTalentID retrieves the authenticated talent's ID from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireTalentID(c *gin.Context) (uint32, bool) {
	talentID, ok := GetTalentID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "Veuillez vous connecter.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] identifiant du talent absent du contexte")
		return 0, false
	}
	return talentID, true
}
