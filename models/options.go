package models

// Option lists served to the form so it renders the same choices the
// planner understands.

type PreferenceOption struct {
	ID          Preference `json:"id"`
	Label       string     `json:"label"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type FormOptions struct {
	Preferences []PreferenceOption `json:"preferences"`
	Paces       []Option           `json:"paces"`
	Budgets     []Option           `json:"budgets"`
	Companions  []Option           `json:"companions"`
}

var PreferenceOptions = []PreferenceOption{
	{ID: PreferenceFood, Label: "Food & Cafés", Icon: "🍽", Description: "Local eats, cafés, and must-try spots"},
	{ID: PreferenceRelaxed, Label: "Relaxed & Quiet", Icon: "🌿", Description: "Less crowds, slower pace, peaceful places"},
	{ID: PreferenceScenic, Label: "Scenic & Instagrammable", Icon: "📸", Description: "Photo-worthy views and aesthetics"},
	{ID: PreferenceCulture, Label: "Culture & History", Icon: "🏛", Description: "Museums, landmarks, and local stories"},
	{ID: PreferenceAdventure, Label: "Adventure & Outdoors", Icon: "🎢", Description: "Hiking, activities, and nature"},
	{ID: PreferenceFamily, Label: "Family-Friendly", Icon: "👨‍👩‍👧", Description: "Safe, accessible, kid-friendly places"},
}

var PaceOptions = []Option{
	{ID: "relaxed", Label: "Relaxed"},
	{ID: "balanced", Label: "Balanced"},
	{ID: "packed", Label: "Packed"},
}

var BudgetOptions = []Option{
	{ID: "budget", Label: "Budget"},
	{ID: "mid_range", Label: "Mid-range"},
	{ID: "premium", Label: "Premium"},
}

var CompanionOptions = []Option{
	{ID: "solo", Label: "Solo"},
	{ID: "couple", Label: "Couple"},
	{ID: "friends", Label: "Friends"},
	{ID: "family", Label: "Family w/ Kids"},
	{ID: "elderly", Label: "Elderly Parents"},
}
