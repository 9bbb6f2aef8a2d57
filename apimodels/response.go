package apimodels

import "github.com/sozercan/tour-guide/internal/catalog"

type RecommendationResponse struct {
	// ID of the recommended tour, null when no recommendation could be made
	TourID *string `json:"tourId"`

	// The recommended tour in the requested language
	Tour *catalog.Tour `json:"tour,omitempty"`
}

type ToursResponse struct {
	Language string         `json:"language"`
	Category string         `json:"category"`
	Tours    []catalog.Tour `json:"tours"`
}

type CategoriesResponse struct {
	Language   string             `json:"language"`
	Categories []catalog.Category `json:"categories"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
