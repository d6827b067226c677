package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"wanderplan/models"
	"wanderplan/utils"

	"google.golang.org/genai"
)

// itineraryGenerator is the slice of GeminiService the planner needs.
type itineraryGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// ItineraryService turns one TripRequest into one schema-constrained
// generation call and post-processes the result into a scheduled plan.
type ItineraryService struct {
	Gemini itineraryGenerator
}

func NewItineraryService() *ItineraryService {
	return &ItineraryService{
		Gemini: NewGeminiService(),
	}
}

const (
	anchorMinutes        = 9 * 60 // plans start at 09:00 local
	defaultTravelMinutes = 15
	minutesPerDay        = 24 * 60
)

// itinerarySchema constrains the generation output. The service still is
// not trusted to follow it, everything gets re-validated after parsing.
var itinerarySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day":   {Type: genai.TypeInteger},
			"theme": {Type: genai.TypeString, Description: "Short theme for the day, e.g., 'Historical Center' or 'Food & Culture'"},
			"activities": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"placeName":            {Type: genai.TypeString},
						"description":          {Type: genai.TypeString},
						"category":             {Type: genai.TypeString, Enum: []string{"Sightseeing", "Food", "Adventure", "Relax", "Nature", "Culture"}},
						"rating":               {Type: genai.TypeNumber},
						"latitude":             {Type: genai.TypeNumber},
						"longitude":            {Type: genai.TypeNumber},
						"bestTime":             {Type: genai.TypeString, Enum: []string{"Morning", "Afternoon", "Evening"}},
						"imageKeywords":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"durationMinutes":      {Type: genai.TypeInteger},
						"crowdLevel":           {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
						"distanceFromPrevious": {Type: genai.TypeString, Description: "e.g., '1.2 km from previous stop'"},
						"travelTimeMinutes":    {Type: genai.TypeInteger, Description: "Minutes to travel from the previous stop"},
						"nearbyFood":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"whyVisit":             {Type: genai.TypeString, Description: "One-line reason this stop is worth the time"},
					},
					Required: []string{"placeName", "description", "category", "rating", "latitude", "longitude", "bestTime", "imageKeywords", "durationMinutes", "crowdLevel", "whyVisit"},
				},
			},
		},
		Required: []string{"day", "theme", "activities"},
	},
}

// PlanTrip issues the single itinerary call for a trip. It does not go
// through the throttled queue: there is only one of these per submission
// and it is latency-bound, not burst-bound.
func (s *ItineraryService) PlanTrip(ctx context.Context, req models.TripRequest) ([]models.ItineraryDay, error) {
	prompt := buildItineraryPrompt(req)

	text, err := s.Gemini.GenerateJSON(ctx, prompt, itinerarySchema)
	if err != nil {
		return nil, err
	}

	days, err := parseItinerary(text)
	if err != nil {
		return nil, err
	}

	finalizeItinerary(days)
	return days, nil
}

func buildItineraryPrompt(req models.TripRequest) string {
	labels := make([]string, 0, len(req.Preferences))
	for _, p := range req.Preferences {
		labels = append(labels, p.Label())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a travel planning AI.\n")
	fmt.Fprintf(&b, "Your task is to generate a perfectly planned %d-day trip to %s.\n\n", req.Days, req.Destination)

	fmt.Fprintf(&b, "INPUT:\n")
	fmt.Fprintf(&b, "- City name: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Duration: %d day(s)\n", req.Days)
	fmt.Fprintf(&b, "- Trip preferences: %s\n", strings.Join(labels, ", "))
	if req.Pace != "" {
		fmt.Fprintf(&b, "- Pace: %s\n", req.Pace)
	}
	if req.Budget != "" {
		fmt.Fprintf(&b, "- Budget: %s\n", req.Budget)
	}
	if req.Companion != "" {
		fmt.Fprintf(&b, "- Traveling as: %s\n", req.Companion)
	}

	fmt.Fprintf(&b, "\nINSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Organize the trip into %d daily itineraries.\n", req.Days)
	fmt.Fprintf(&b, "2. For EACH day, select 3-5 distinct must-visit locations based on the selected preferences.\n")
	fmt.Fprintf(&b, "3. Optimize the order logically for each day to minimize travel distance (cluster nearby locations, avoid backtracking).\n")
	fmt.Fprintf(&b, "4. Provide a short \"theme\" for each day (e.g., \"Downtown Exploration\", \"Nature & Parks\").\n")
	fmt.Fprintf(&b, "5. Avoid tourist traps if \"Relaxed & quiet\" is selected.\n")
	fmt.Fprintf(&b, "6. Prioritize safety, accessibility, and food options if \"Family-friendly\" is selected.\n")
	fmt.Fprintf(&b, "7. Ensure thematic variety across the days.\n")
	fmt.Fprintf(&b, "8. For every stop include a realistic visit duration in minutes, the expected crowd level, travel time in minutes from the previous stop, and a one-line reason to visit.\n")

	fmt.Fprintf(&b, "\nProvide accurate latitude and longitude for mapping.\n")
	fmt.Fprintf(&b, "Ensure the output is valid JSON matching the provided schema.\n")
	return b.String()
}

// markdown fence cleanup, the model sometimes wraps JSON in ```json blocks
var fenceRegexp = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

func cleanJSONResponse(response string) string {
	cleaned := fenceRegexp.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}

// Wire shapes for decoding. Required fields are pointers so a field the
// model omitted is distinguishable from a zero value (a missing latitude
// must not silently become 0,0).
type dayWire struct {
	Day        *int           `json:"day"`
	Theme      *string        `json:"theme"`
	Activities []activityWire `json:"activities"`
}

type activityWire struct {
	PlaceName            *string  `json:"placeName"`
	Description          *string  `json:"description"`
	Category             *string  `json:"category"`
	Rating               *float64 `json:"rating"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	BestTime             *string  `json:"bestTime"`
	ImageKeywords        []string `json:"imageKeywords"`
	DurationMinutes      *int     `json:"durationMinutes"`
	CrowdLevel           string   `json:"crowdLevel"`
	DistanceFromPrevious string   `json:"distanceFromPrevious"`
	TravelTimeMinutes    int      `json:"travelTimeMinutes"`
	NearbyFood           []string `json:"nearbyFood"`
	WhyVisit             string   `json:"whyVisit"`
}

func (a activityWire) toItem() (models.ItineraryItem, bool) {
	if a.PlaceName == nil || *a.PlaceName == "" ||
		a.Description == nil || *a.Description == "" ||
		a.Category == nil || *a.Category == "" ||
		a.Rating == nil ||
		a.Latitude == nil || a.Longitude == nil ||
		a.BestTime == nil || *a.BestTime == "" ||
		a.ImageKeywords == nil ||
		a.DurationMinutes == nil || *a.DurationMinutes <= 0 {
		return models.ItineraryItem{}, false
	}
	return models.ItineraryItem{
		PlaceName:            *a.PlaceName,
		Description:          *a.Description,
		Category:             models.LocationCategory(*a.Category),
		Rating:               *a.Rating,
		Latitude:             *a.Latitude,
		Longitude:            *a.Longitude,
		BestTime:             models.BestTime(*a.BestTime),
		ImageKeywords:        a.ImageKeywords,
		DurationMinutes:      *a.DurationMinutes,
		CrowdLevel:           models.CrowdLevel(a.CrowdLevel),
		DistanceFromPrevious: a.DistanceFromPrevious,
		TravelTimeMinutes:    a.TravelTimeMinutes,
		NearbyFood:           a.NearbyFood,
		WhyVisit:             a.WhyVisit,
	}, true
}

// parseItinerary decodes and validates the raw payload. Every required
// field must be present and correctly typed before the payload is trusted;
// anything missing or mistyped is a schema failure.
func parseItinerary(text string) ([]models.ItineraryDay, error) {
	var wire []dayWire
	if err := json.Unmarshal([]byte(cleanJSONResponse(text)), &wire); err != nil {
		return nil, utils.ErrSchema
	}
	if len(wire) == 0 {
		return nil, utils.ErrSchema
	}

	days := make([]models.ItineraryDay, 0, len(wire))
	for _, w := range wire {
		if w.Day == nil || w.Theme == nil || *w.Theme == "" || len(w.Activities) == 0 {
			return nil, utils.ErrSchema
		}
		day := models.ItineraryDay{Day: *w.Day, Theme: *w.Theme}
		for _, a := range w.Activities {
			item, ok := a.toItem()
			if !ok {
				return nil, utils.ErrSchema
			}
			day.Activities = append(day.Activities, item)
		}
		days = append(days, day)
	}
	return days, nil
}

// finalizeItinerary applies the deterministic post-processing pass: day
// numbers made contiguous, pin numbers assigned in visit order, enum text
// normalized, and start/end clock times derived from the 09:00 anchor.
func finalizeItinerary(days []models.ItineraryDay) {
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	for d := range days {
		days[d].Day = d + 1
		items := days[d].Activities

		clock := anchorMinutes
		for i := range items {
			items[i].PinNumber = i + 1
			items[i].Category = models.ParseLocationCategory(string(items[i].Category))
			items[i].BestTime = models.ParseBestTime(string(items[i].BestTime))
			items[i].CrowdLevel = models.ParseCrowdLevel(string(items[i].CrowdLevel))

			if i > 0 {
				travel := items[i].TravelTimeMinutes
				if travel <= 0 {
					travel = defaultTravelMinutes
				}
				clock += travel
			}
			items[i].StartTime = formatClock(clock)
			clock += items[i].DurationMinutes
			items[i].EndTime = formatClock(clock)
		}
	}
}

// formatClock renders minutes-from-midnight as a 12-hour clock. Plans that
// run past midnight wrap the displayed hour, they do not roll to a new date.
func formatClock(totalMinutes int) string {
	totalMinutes = ((totalMinutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour := totalMinutes / 60
	minute := totalMinutes % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}
