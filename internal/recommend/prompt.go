package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/i18n"
	"github.com/sozercan/tour-guide/internal/llm"
)

const systemPrompt = `You are an expert tour guide for Joseph Tours in San Blas, Panama.
Your task is to analyze the user's request and recommend the single best tour package from the provided list of available tours.
The user is communicating in %s.
Analyze their stated or implied preferences (e.g., relaxation, adventure, family, budget, duration, interests).
Based on your analysis, choose exactly one tour from the list, the one that is the most suitable match.
You MUST return your answer as a JSON object containing only the "tourId" field, set to the "id" of the chosen tour.
Do not add any other text, explanation, or markdown formatting.

Here is the list of available tours:
%s`

// tourIDSchema is the reply shape requested from the model: {"tourId": string}.
var tourIDSchema = &llm.Schema{
	Name:        "tour_recommendation",
	Description: "The single tour that best matches the traveler's request.",
	Properties: []llm.Property{
		{Name: "tourId", Description: "The unique ID of the recommended tour.", Required: true},
	},
}

func buildInstruction(lang i18n.Language, tours []catalog.TourSummary) (string, error) {
	list, err := json.MarshalIndent(tours, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tour summaries: %w", err)
	}
	return fmt.Sprintf(systemPrompt, lang.Name(), list), nil
}
