package router

import (
	"github.com/taalentio/talent-api/internal/auth"
	"github.com/taalentio/talent-api/internal/cinema"
	"github.com/taalentio/talent-api/internal/config"
	"github.com/taalentio/talent-api/internal/identity"
	"github.com/taalentio/talent-api/internal/meta"
	"github.com/taalentio/talent-api/internal/project"
	"github.com/taalentio/talent-api/internal/shared/database"
	"github.com/taalentio/talent-api/internal/shared/middleware"
	"github.com/taalentio/talent-api/internal/shared/token"
	"github.com/taalentio/talent-api/internal/talent"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check, metrics)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// repository
	talentRepository := talent.NewTalentRepository()
	cinemaRepository := cinema.NewCinemaRepository()
	projectRepository := project.NewProjectRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	generator := identity.NewGenerator()
	// one bucket set per form: signups do not consume the cinema quota
	signupLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	cinemaLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	requireAuth := middleware.JWTWithManager(tokenManager)

	// service
	authService := auth.NewAuthService(db.DB, talentRepository, generator, tokenManager)
	talentService := talent.NewTalentService(db.DB, talentRepository)
	cinemaService := cinema.NewCinemaService(db.DB, cinemaRepository, generator)
	projectService := project.NewProjectService(db.DB, projectRepository, generator)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	talentHandler := talent.NewTalentHandler(talentService)
	cinemaHandler := cinema.NewCinemaHandler(cinemaService)
	projectHandler := project.NewProjectHandler(projectService)
	codeHandler := identity.NewCodeHandler()

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", signupLimiter.Handler(), authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
	}

	talentV1 := router.Group("/api/v1/talents")
	{
		talentV1.GET("/me", requireAuth, talentHandler.GetProfile)
		talentV1.PATCH("/me", requireAuth, talentHandler.UpdateProfile)
		talentV1.GET("/:code", talentHandler.GetPublicCard)
	}

	cinemaV1 := router.Group("/api/v1/cinema-talents")
	{
		cinemaV1.POST("", cinemaLimiter.Handler(), cinemaHandler.Register)
		cinemaV1.GET("/:code", requireAuth, cinemaHandler.GetByCode)
	}

	projectV1 := router.Group("/api/v1/projects")
	projectV1.Use(requireAuth)
	{
		projectV1.POST("", projectHandler.CreateProject)
		projectV1.POST("/:id/talents", projectHandler.AssignTalent)
		projectV1.GET("/:id/talents", projectHandler.ListTalents)
	}

	codeV1 := router.Group("/api/v1/codes")
	{
		codeV1.GET("/:variant/:code", codeHandler.Decode)
	}
}
