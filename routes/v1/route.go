package route

import (
	"net/http"

	"wanderplan/controllers"
	"wanderplan/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	// One controller instance per process: the image queue it owns is the
	// shared pacing state for every lookup.
	tripHandler := controllers.NewTripController()

	// Register the routes
	v1Routes := router.Group("/v1")
	{
		handlers.RegisterTripRoutes(v1Routes, tripHandler)

		v1Routes.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
