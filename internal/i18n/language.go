package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Language is one of the display languages the site supports.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"

	// Default is used when no language is requested and as the fallback
	// for missing translations.
	Default = Spanish
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Languages lists the supported languages in display order.
var Languages = []Language{Spanish, English}

// Parse converts a language code such as "en" or " ES " into a Language.
// An empty code yields Default.
func Parse(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Default, nil
	}
	for _, l := range Languages {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Name returns the English name of the language, as used in model instructions.
func (l Language) Name() string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Spanish"
	default:
		return string(l)
	}
}

func (l Language) String() string {
	return string(l)
}

// Text is a string translated into one or more languages.
type Text map[Language]string

// In returns the translation for lang, falling back to Default and then to
// the empty string.
func (t Text) In(lang Language) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[Default]
}

// TextList is an ordered list of translated strings.
type TextList []Text

// In translates every entry of the list.
func (tl TextList) In(lang Language) []string {
	out := make([]string, 0, len(tl))
	for _, t := range tl {
		out = append(out, t.In(lang))
	}
	return out
}
