package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taalentio/talent-api/internal/config"
	sharedCrypto "github.com/taalentio/talent-api/internal/shared/crypto"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/logger"
)

const healthTimeout = 5 * time.Second

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	startedAt time.Time
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg:       cfg,
		db:        db,
		startedAt: time.Now(),
	}
}

// Health reports database connectivity and whether the field cipher is installed.
// Either failing makes the service unhealthy: profiles cannot be read or written.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	healthy := true
	checks := gin.H{}

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		healthy = false
		logger.FromContext(ctx).Error("Contrôle de santé de la base échoué", "error", err)
		checks["database"] = gin.H{"status": "down", "error": err.Error()}
	} else {
		checks["database"] = gin.H{
			"status":     "up",
			"driver":     h.cfg.Database.Driver,
			"latency_ms": time.Since(start).Milliseconds(),
		}
	}

	if _, err := sharedCrypto.Default(); err != nil {
		healthy = false
		logger.FromContext(ctx).Error("Chiffrement des champs non initialisé")
		checks["fieldEncryption"] = gin.H{"status": "down"}
	} else {
		checks["fieldEncryption"] = gin.H{"status": "up"}
	}

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"service": gin.H{
			"name":           h.cfg.App.Name,
			"environment":    h.cfg.App.Env,
			"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		},
		"checks": checks,
	})
}
