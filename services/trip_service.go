package services

import (
	"context"
	"net/http"
	"strings"

	"wanderplan/models"
	"wanderplan/queue"
	"wanderplan/utils"
)

// TripService sequences the planning flow: exactly one itinerary call per
// submission, then per-activity image lookups triggered lazily by the
// client for the cards it actually renders.
type TripService struct {
	ItineraryService *ItineraryService
	ImageService     *ImageService
}

// NewTripService builds the orchestrator and the one throttled queue all
// image lookups in this process share.
func NewTripService() *TripService {
	imageQueue := queue.New[*models.ImageResult](ImageQueueDelay)
	return &TripService{
		ItineraryService: NewItineraryService(),
		ImageService:     NewImageService(imageQueue),
	}
}

// PlanTrip revalidates the request bounds and issues the itinerary call.
// The plan is created atomically from one call, never partially updated;
// image resolution happens later and cannot invalidate it.
func (s *TripService) PlanTrip(ctx context.Context, req models.TripRequest) (*models.TripPlan, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Destination is required")
	}
	if req.Days < 1 || req.Days > 7 {
		return nil, utils.NewCustomError(http.StatusBadRequest, "Days must be between 1 and 7")
	}
	req.Destination = destination

	days, err := s.ItineraryService.PlanTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.TripPlan{
		Destination: destination,
		Days:        days,
	}, nil
}

// FindPlaceImage resolves one activity's photo through the shared queue.
func (s *TripService) FindPlaceImage(ctx context.Context, placeName, city string) (*models.ImageResult, error) {
	return s.ImageService.FindPlaceImage(ctx, placeName, city)
}
