package router

import (
	"github.com/gin-gonic/gin"

	"chequero/internal/config"
	"chequero/internal/handler"
	"chequero/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	chequeH *handler.ChequeHandler,
	creditH *handler.CreditHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	cheques := v1.Group("/cheques")
	cheques.POST("/process", chequeH.Process)

	credit := v1.Group("/credit")
	credit.GET("/:cuit", creditH.Check)

	return r
}
