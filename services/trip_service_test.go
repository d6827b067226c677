package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"wanderplan/models"
	"wanderplan/utils"
)

func TestPlanTripValidatesBounds(t *testing.T) {
	svc := &TripService{ItineraryService: &ItineraryService{Gemini: &stubJSONGenerator{response: kyotoResponse}}}

	cases := []struct {
		name string
		req  models.TripRequest
	}{
		{"empty destination", models.TripRequest{Destination: "   ", Days: 2}},
		{"zero days", models.TripRequest{Destination: "Kyoto", Days: 0}},
		{"too many days", models.TripRequest{Destination: "Kyoto", Days: 8}},
	}
	for _, tc := range cases {
		_, err := svc.PlanTrip(context.Background(), tc.req)
		var customErr *utils.CustomError
		if !errors.As(err, &customErr) {
			t.Fatalf("%s: error = %v, want CustomError", tc.name, err)
		}
		if customErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, customErr.StatusCode)
		}
	}
}

func TestPlanTripTrimsDestination(t *testing.T) {
	stub := &stubJSONGenerator{response: kyotoResponse}
	svc := &TripService{ItineraryService: &ItineraryService{Gemini: stub}}

	plan, err := svc.PlanTrip(context.Background(), models.TripRequest{
		Destination: "  Kyoto  ",
		Days:        2,
		Preferences: []models.Preference{models.PreferenceCulture},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plan.Destination != "Kyoto" {
		t.Fatalf("destination = %q", plan.Destination)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("got %d days", len(plan.Days))
	}
}

func TestPlanTripDoesNotTouchImageQueue(t *testing.T) {
	stub := &stubJSONGenerator{response: kyotoResponse}
	imageStub := &stubGroundedGenerator{}
	svc := &TripService{
		ItineraryService: &ItineraryService{Gemini: stub},
		ImageService:     newTestImageService(imageStub),
	}

	if _, err := svc.PlanTrip(context.Background(), models.TripRequest{
		Destination: "Kyoto",
		Days:        2,
		Preferences: []models.Preference{models.PreferenceCulture},
	}); err != nil {
		t.Fatal(err)
	}

	// image lookups are lazy, never fanned out by the planner itself
	if imageStub.calls != 0 {
		t.Fatalf("planner triggered %d image lookups", imageStub.calls)
	}
}
