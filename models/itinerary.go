package models

import "strings"

// ItineraryDay is one day of the generated plan. Activities are in visit
// order; that order is meaningful, not arbitrary.
type ItineraryDay struct {
	Day        int             `json:"day"`
	Theme      string          `json:"theme"`
	Activities []ItineraryItem `json:"activities"`
}

// ItineraryItem is a single stop. Category, BestTime and CrowdLevel arrive
// as free text from the generation service, so they are normalized through
// the parsers below before leaving the service layer.
type ItineraryItem struct {
	PlaceName            string           `json:"placeName"`
	Description          string           `json:"description"`
	Category             LocationCategory `json:"category"`
	Rating               float64          `json:"rating"`
	Latitude             float64          `json:"latitude"`
	Longitude            float64          `json:"longitude"`
	BestTime             BestTime         `json:"bestTime"`
	ImageKeywords        []string         `json:"imageKeywords"`
	DurationMinutes      int              `json:"durationMinutes"`
	CrowdLevel           CrowdLevel       `json:"crowdLevel,omitempty"`
	DistanceFromPrevious string           `json:"distanceFromPrevious,omitempty"`
	TravelTimeMinutes    int              `json:"travelTimeMinutes,omitempty"`
	NearbyFood           []string         `json:"nearbyFood,omitempty"`
	WhyVisit             string           `json:"whyVisit,omitempty"`

	// Derived fields, filled in by post-processing.
	PinNumber int    `json:"pin_number"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

type LocationCategory string

const (
	CategorySightseeing LocationCategory = "Sightseeing"
	CategoryFood        LocationCategory = "Food"
	CategoryAdventure   LocationCategory = "Adventure"
	CategoryRelax       LocationCategory = "Relax"
	CategoryNature      LocationCategory = "Nature"
	CategoryCulture     LocationCategory = "Culture"
	CategoryUnknown     LocationCategory = "Unknown"
)

type BestTime string

const (
	BestTimeMorning   BestTime = "Morning"
	BestTimeAfternoon BestTime = "Afternoon"
	BestTimeEvening   BestTime = "Evening"
	BestTimeUnknown   BestTime = "Unknown"
)

type CrowdLevel string

const (
	CrowdLow     CrowdLevel = "Low"
	CrowdMedium  CrowdLevel = "Medium"
	CrowdHigh    CrowdLevel = "High"
	CrowdUnknown CrowdLevel = "Unknown"
)

// ParseLocationCategory normalizes free text from the model. The service is
// not contractually guaranteed to emit only declared enum values.
func ParseLocationCategory(s string) LocationCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sightseeing":
		return CategorySightseeing
	case "food":
		return CategoryFood
	case "adventure":
		return CategoryAdventure
	case "relax":
		return CategoryRelax
	case "nature":
		return CategoryNature
	case "culture":
		return CategoryCulture
	default:
		return CategoryUnknown
	}
}

func ParseBestTime(s string) BestTime {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return BestTimeMorning
	case "afternoon":
		return BestTimeAfternoon
	case "evening":
		return BestTimeEvening
	default:
		return BestTimeUnknown
	}
}

func ParseCrowdLevel(s string) CrowdLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CrowdLow
	case "medium":
		return CrowdMedium
	case "high":
		return CrowdHigh
	default:
		return CrowdUnknown
	}
}
