package environment

import "os"

func GetGeminiKey() string {
	return os.Getenv("GEMINI_API_KEY") // Simpan API Key di environment variable
}

// GetItineraryModel returns the model used for schema-constrained itinerary generation.
func GetItineraryModel() string {
	model := os.Getenv("GEMINI_ITINERARY_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return model
}

// GetImageModel returns the cheaper model used for search-grounded image lookups.
func GetImageModel() string {
	model := os.Getenv("GEMINI_IMAGE_MODEL")
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	return model
}
