package utils

import "net/http"

// CustomError digunakan untuk error dengan status code yang spesifik
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError Fungsi helper untuk membuat CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// Error taxonomy for the generation boundary. Services return these as-is so
// the error middleware can map each one to a distinct HTTP response.
var (
	// ErrGeneration: the service returned no usable payload for the itinerary.
	ErrGeneration = NewCustomError(http.StatusBadGateway, "Failed to generate itinerary. Please try again.")

	// ErrSchema: payload present but does not match the expected itinerary shape.
	ErrSchema = NewCustomError(http.StatusBadGateway, "Failed to generate itinerary. Please try again.")

	// ErrCredential: the service rejected the API key / project. Surfaced
	// separately so the client can prompt for a new key instead of retrying.
	ErrCredential = NewCustomError(http.StatusUnauthorized, "API Key Error: Please select a valid API key project.")

	// ErrTimeout: the service call exceeded the boundary timeout.
	ErrTimeout = NewCustomError(http.StatusGatewayTimeout, "Generation service timed out. Please try again.")
)
