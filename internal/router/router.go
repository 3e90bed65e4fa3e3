package router

import (
	"github.com/gin-gonic/gin"

	"superclaims/internal/handler"
	"superclaims/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	claimH *handler.ClaimHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	// Claim processing
	r.POST("/process-claim", claimH.Process)

	return r
}
