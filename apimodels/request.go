package apimodels

type RecommendationRequest struct {
	// Prompt is the traveler's free-text description of their ideal trip
	Prompt string `json:"prompt"`

	// Language is the display language, "es" or "en"
	Language string `json:"language,omitempty"`
}
