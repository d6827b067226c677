package controllers

import (
	"context"
	"errors"
	"net/http"

	"wanderplan/models"
	"wanderplan/services"
	"wanderplan/utils"

	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is the nginx convention for a client that went
// away before the response was ready.
const StatusClientClosedRequest = 499

// TripController struct
type TripController struct {
	TripService *services.TripService
}

// NewTripController initializes TripController with the service layer
func NewTripController() *TripController {
	return &TripController{
		TripService: services.NewTripService(),
	}
}

// PlanTrip generates a full itinerary from the submitted trip request
func (tc *TripController) PlanTrip(c *gin.Context) {
	var req models.TripRequest

	// Bind JSON request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := tc.TripService.PlanTrip(c.Request.Context(), req)
	if err != nil {
		c.Error(err) // Middleware akan menangani error ini
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Itinerary generated successfully", plan)
}

// FindPlaceImage resolves a photo for one activity card. A missing image is
// a normal outcome and still returns 200 with a null image.
func (tc *TripController) FindPlaceImage(c *gin.Context) {
	place := c.Query("place")
	city := c.Query("city")

	image, err := tc.TripService.FindPlaceImage(c.Request.Context(), place, city)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// client went away before the lookup ran
			c.AbortWithStatus(StatusClientClosedRequest)
			return
		}
		c.Error(err) // Middleware akan menangani error ini
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Image lookup completed", gin.H{"image": image})
}

// GetOptions serves the static form option lists
func (tc *TripController) GetOptions(c *gin.Context) {
	options := models.FormOptions{
		Preferences: models.PreferenceOptions,
		Paces:       models.PaceOptions,
		Budgets:     models.BudgetOptions,
		Companions:  models.CompanionOptions,
	}
	utils.SuccessResponse(c, http.StatusOK, "Options fetched successfully", options)
}
