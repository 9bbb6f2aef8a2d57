package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sozercan/tour-guide/internal/catalog"
)

var (
	errEmptyReply    = errors.New("model reply is empty")
	errMissingTourID = errors.New("model reply has no tourId")
	errUnknownTour   = errors.New("model reply names a tour not in the catalog")
)

type reply struct {
	TourID *string `json:"tourId"`
}

// parseReply decodes the model output, which must be exactly one JSON object.
// Code fences or surrounding prose are rejected rather than stripped.
func parseReply(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errEmptyReply
	}

	var r reply
	if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
		return "", fmt.Errorf("failed to parse model reply: %w", err)
	}
	if r.TourID == nil || *r.TourID == "" {
		return "", errMissingTourID
	}
	return *r.TourID, nil
}

// validateTourID accepts id only if it is exactly the id of one of tours.
func validateTourID(id string, tours []catalog.Tour) (string, error) {
	for _, t := range tours {
		if t.ID == id {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownTour, id)
}
