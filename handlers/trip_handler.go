package handlers

import (
	"wanderplan/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTripRoutes(router *gin.RouterGroup, tripController *controllers.TripController) {
	tripGroup := router.Group("/trips")
	{
		tripGroup.POST("", tripController.PlanTrip)
		tripGroup.GET("/image", tripController.FindPlaceImage)
	}

	router.GET("/options", tripController.GetOptions)
}
