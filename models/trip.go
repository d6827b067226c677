package models

// TripRequest is the validated form input for one trip submission.
// Immutable once submitted.
type TripRequest struct {
	Destination string       `json:"destination" binding:"required"`
	Days        int          `json:"days" binding:"required,min=1,max=7"`
	Preferences []Preference `json:"preferences" binding:"required,min=1"`
	Pace        string       `json:"pace"`
	Budget      string       `json:"budget"`
	Companion   string       `json:"companion"`
}

// TripPlan is the full planned trip returned to the client.
type TripPlan struct {
	Destination string         `json:"destination"`
	Days        []ItineraryDay `json:"days"`
}

type Preference string

const (
	PreferenceFood      Preference = "food"
	PreferenceRelaxed   Preference = "relaxed"
	PreferenceScenic    Preference = "scenic"
	PreferenceCulture   Preference = "culture"
	PreferenceAdventure Preference = "adventure"
	PreferenceFamily    Preference = "family"
)

// preferenceLabels maps preference ids to the human wording used in prompts.
var preferenceLabels = map[Preference]string{
	PreferenceFood:      "Best food & cafes",
	PreferenceRelaxed:   "Relaxed & quiet, less crowded",
	PreferenceScenic:    "Scenic & photo-worthy views",
	PreferenceCulture:   "Culture, history & museums",
	PreferenceAdventure: "Adventurous / outdoor",
	PreferenceFamily:    "Family-friendly",
}

// Label returns the prompt wording for a preference. Unrecognized ids pass
// through unchanged so a newer client does not break prompt building.
func (p Preference) Label() string {
	if label, ok := preferenceLabels[p]; ok {
		return label
	}
	return string(p)
}
