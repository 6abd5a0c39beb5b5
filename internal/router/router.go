package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/renchinlab/cookware-api/internal/config"
	"github.com/renchinlab/cookware-api/internal/handlers"
	"github.com/renchinlab/cookware-api/internal/logger"
	"github.com/renchinlab/cookware-api/internal/middleware"
	"github.com/renchinlab/cookware-api/internal/rakuten"
	"github.com/renchinlab/cookware-api/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	// The endpoint is called server-to-server by the GPTs Actions runtime,
	// so origins are left open.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Liveness probe, no auth
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"ok":      true,
			"service": "alive",
		})
	})

	// Recommendation route setup
	searcher := rakuten.NewClient(
		cfg.EnvVars.RakutenApplicationID,
		cfg.EnvVars.RakutenAffiliateID,
		cfg.EnvVars.RakutenSearchURL,
	)
	recommendService := service.NewRecommendationService(cfg, searcher, cfg.Keywords)
	recommendHandler := handlers.NewRecommendHandler(recommendService)

	// Group for routes that require the shared bearer token
	protected := r.Group("/")
	{
		protected.Use(middleware.VerifyBearerToken(cfg))

		protected.POST("/recommend_cooking_tools", recommendHandler.Recommend)
	}

	return r
}
