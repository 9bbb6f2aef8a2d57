package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sozercan/tour-guide/internal/i18n"
)

//go:embed tours.yaml
var defaultCatalog []byte

var (
	ErrTourNotFound    = errors.New("tour not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrEmptyCatalog    = errors.New("catalog has no tours")
)

// Catalog is the ordered, read-only set of bookable tours.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

type catalogFile struct {
	Tours []Entry `yaml:"tours"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("Loaded catalog", "path", path, "tours", c.Len())
	return c, nil
}

// Load decodes and validates a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Tours)
}

// New builds a catalog from entries, rejecting empty or duplicate ids and
// unknown categories.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("tour %d: missing id", i)
		}
		if _, dup := byID[e.ID]; dup {
			return nil, fmt.Errorf("tour %q: duplicate id", e.ID)
		}
		if e.Category == CategoryAll || categoryLabels[e.Category] == nil {
			return nil, fmt.Errorf("tour %q: %w %q", e.ID, ErrUnknownCategory, e.Category)
		}
		byID[e.ID] = i
	}

	return &Catalog{entries: entries, byID: byID}, nil
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Tours returns every tour in catalog order.
func (c *Catalog) Tours(lang i18n.Language) []Tour {
	tours := make([]Tour, 0, len(c.entries))
	for _, e := range c.entries {
		tours = append(tours, e.Localize(lang))
	}
	return tours
}

// Filter returns the tours of one category. An empty key or CategoryAll
// returns every tour.
func (c *Catalog) Filter(lang i18n.Language, category string) ([]Tour, error) {
	if category == "" || category == CategoryAll {
		return c.Tours(lang), nil
	}
	if _, ok := categoryLabels[category]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	tours := []Tour{}
	for _, e := range c.entries {
		if e.Category == category {
			tours = append(tours, e.Localize(lang))
		}
	}
	return tours, nil
}

// Tour looks up a single tour by id.
func (c *Catalog) Tour(lang i18n.Language, id string) (Tour, error) {
	i, ok := c.byID[id]
	if !ok {
		return Tour{}, fmt.Errorf("%w: %q", ErrTourNotFound, id)
	}
	return c.entries[i].Localize(lang), nil
}

// Categories returns the filter list with labels in lang.
func (c *Catalog) Categories(lang i18n.Language) []Category {
	out := make([]Category, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		out = append(out, Category{Key: key, Label: categoryLabels[key].In(lang)})
	}
	return out
}
