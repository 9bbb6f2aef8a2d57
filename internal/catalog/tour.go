package catalog

import (
	"github.com/sozercan/tour-guide/internal/i18n"
)

// Category keys used to filter the catalog.
const (
	CategoryAll     = "all"
	CategoryDaytrip = "daytrip"
	CategoryBooking = "booking"
	CategoryStay    = "stay"
)

var categoryLabels = map[string]i18n.Text{
	CategoryAll:     {i18n.Spanish: "Todos", i18n.English: "All"},
	CategoryDaytrip: {i18n.Spanish: "Pasadía", i18n.English: "Day Trip"},
	CategoryBooking: {i18n.Spanish: "Reservas", i18n.English: "Bookings"},
	CategoryStay:    {i18n.Spanish: "Estadía", i18n.English: "Stay"},
}

// categoryOrder is the order filters are shown in.
var categoryOrder = []string{CategoryAll, CategoryDaytrip, CategoryBooking, CategoryStay}

// Category is a catalog filter with its label in one language.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Entry is a stored tour record with text in every supported language.
type Entry struct {
	ID             string        `yaml:"id"`
	Category       string        `yaml:"category"`
	Image          string        `yaml:"image"`
	Title          i18n.Text     `yaml:"title"`
	Legend         i18n.Text     `yaml:"legend"`
	Includes       i18n.TextList `yaml:"includes"`
	NotIncluded    i18n.TextList `yaml:"notIncluded"`
	Pickup         i18n.Text     `yaml:"pickup"`
	AdditionalInfo i18n.TextList `yaml:"additionalInfo"`
}

// Tour is a full tour record localized into one language.
type Tour struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	CategoryKey string  `json:"categoryKey"`
	Image       string  `json:"image"`
	Title       string  `json:"title"`
	Legend      string  `json:"legend"`
	Details     Details `json:"details"`
}

type Details struct {
	Includes       []string `json:"includes"`
	NotIncluded    []string `json:"not_included"`
	Pickup         string   `json:"pickup"`
	AdditionalInfo []string `json:"additional_info,omitempty"`
}

// Localize renders the entry in lang.
func (e Entry) Localize(lang i18n.Language) Tour {
	t := Tour{
		ID:          e.ID,
		Category:    categoryLabels[e.Category].In(lang),
		CategoryKey: e.Category,
		Image:       e.Image,
		Title:       e.Title.In(lang),
		Legend:      e.Legend.In(lang),
		Details: Details{
			Includes:    e.Includes.In(lang),
			NotIncluded: e.NotIncluded.In(lang),
			Pickup:      e.Pickup.In(lang),
		},
	}
	if len(e.AdditionalInfo) > 0 {
		t.Details.AdditionalInfo = e.AdditionalInfo.In(lang)
	}
	return t
}

// TourSummary is the reduced view of a tour sent to a language model.
// It must only carry these fields.
type TourSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Legend   string   `json:"legend"`
	Category string   `json:"category"`
	Includes []string `json:"includes"`
}

// Summarize projects tours to their summaries, keeping order.
func Summarize(tours []Tour) []TourSummary {
	out := make([]TourSummary, 0, len(tours))
	for _, t := range tours {
		includes := t.Details.Includes
		if includes == nil {
			includes = []string{}
		}
		out = append(out, TourSummary{
			ID:       t.ID,
			Title:    t.Title,
			Legend:   t.Legend,
			Category: t.Category,
			Includes: includes,
		})
	}
	return out
}
