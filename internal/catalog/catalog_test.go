package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/tour-guide/internal/i18n"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 7, c.Len())

	tours := c.Tours(i18n.English)
	ids := make([]string, 0, len(tours))
	for _, tour := range tours {
		ids = append(ids, tour.ID)
		assert.NotEmpty(t, tour.Title, "tour %s has no title", tour.ID)
		assert.NotEmpty(t, tour.Details.Includes, "tour %s has no inclusions", tour.ID)
	}
	assert.Equal(t, []string{"pasadia1", "pasadia2", "pasadia3", "reserva1", "reserva2", "estadia1", "estadia2"}, ids)
}

func TestLocalize(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	en, err := c.Tour(i18n.English, "pasadia1")
	require.NoError(t, err)
	es, err := c.Tour(i18n.Spanish, "pasadia1")
	require.NoError(t, err)

	assert.Equal(t, "Caribbean Islands Day Trip", en.Title)
	assert.Equal(t, "Pasadía Islas del Caribe", es.Title)
	assert.Equal(t, "Day Trip", en.Category)
	assert.Equal(t, "Pasadía", es.Category)
	assert.Equal(t, CategoryDaytrip, en.CategoryKey)
	assert.Nil(t, en.Details.AdditionalInfo)

	stay, err := c.Tour(i18n.English, "estadia1")
	require.NoError(t, err)
	assert.Len(t, stay.Details.AdditionalInfo, 2)
	assert.Empty(t, stay.Details.Pickup)
}

func TestFilter(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	stays, err := c.Filter(i18n.Spanish, CategoryStay)
	require.NoError(t, err)
	require.Len(t, stays, 2)
	for _, tour := range stays {
		assert.Equal(t, CategoryStay, tour.CategoryKey)
	}

	all, err := c.Filter(i18n.Spanish, CategoryAll)
	require.NoError(t, err)
	assert.Len(t, all, c.Len())

	all, err = c.Filter(i18n.Spanish, "")
	require.NoError(t, err)
	assert.Len(t, all, c.Len())

	_, err = c.Filter(i18n.Spanish, "cruise")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestTourNotFound(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Tour(i18n.English, "nope")
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestCategories(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cats := c.Categories(i18n.English)
	require.Len(t, cats, 4)
	assert.Equal(t, Category{Key: CategoryAll, Label: "All"}, cats[0])
	assert.Equal(t, Category{Key: CategoryStay, Label: "Stay"}, cats[3])
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty",
			yaml:    "",
			wantErr: ErrEmptyCatalog.Error(),
		},
		{
			name:    "no tours",
			yaml:    "tours: []",
			wantErr: ErrEmptyCatalog.Error(),
		},
		{
			name:    "missing id",
			yaml:    "tours:\n  - category: stay\n",
			wantErr: "missing id",
		},
		{
			name:    "duplicate id",
			yaml:    "tours:\n  - {id: a, category: stay}\n  - {id: a, category: daytrip}\n",
			wantErr: "duplicate id",
		},
		{
			name:    "unknown category",
			yaml:    "tours:\n  - {id: a, category: cruise}\n",
			wantErr: "unknown category",
		},
		{
			name:    "all is not a tour category",
			yaml:    "tours:\n  - {id: a, category: all}\n",
			wantErr: "unknown category",
		},
		{
			name:    "unknown field",
			yaml:    "tours:\n  - {id: a, category: stay, price: 10}\n",
			wantErr: "price",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tours.yaml")
	data := `tours:
  - id: only
    category: booking
    title: {es: "Única", en: "Only"}
    includes:
      - {es: "Lancha", en: "Boat"}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	tour, err := c.Tour(i18n.English, "only")
	require.NoError(t, err)
	assert.Equal(t, "Only", tour.Title)
	assert.Equal(t, []string{"Boat"}, tour.Details.Includes)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSummarizeOmitsPresentationFields(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tours := c.Tours(i18n.English)
	summaries := Summarize(tours)
	require.Len(t, summaries, len(tours))

	data, err := json.Marshal(summaries)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, s := range decoded {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, []string{"id", "title", "legend", "category", "includes"}, keys)
	}

	assert.NotContains(t, string(data), "raw.githubusercontent.com")
	assert.NotContains(t, string(data), "Pickup at Panama City")
	assert.NotContains(t, string(data), "Alcoholic drinks")
}

func TestSummarizeNilIncludes(t *testing.T) {
	summaries := Summarize([]Tour{{ID: "x"}})
	require.Len(t, summaries, 1)
	assert.NotNil(t, summaries[0].Includes)
}
