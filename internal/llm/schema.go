package llm

// Schema describes a flat JSON object whose properties are all strings.
// It is the common subset of the OpenAI and Gemini structured output formats.
type Schema struct {
	Name        string
	Description string
	Properties  []Property
}

type Property struct {
	Name        string
	Description string
	Required    bool
}

func (s *Schema) required() []string {
	req := []string{}
	for _, p := range s.Properties {
		if p.Required {
			req = append(req, p.Name)
		}
	}
	return req
}

// JSONSchema renders the schema as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]interface{} {
	props := make(map[string]interface{}, len(s.Properties))
	for _, p := range s.Properties {
		prop := map[string]interface{}{"type": "string"}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		props[p.Name] = prop
	}

	return map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"required":             s.required(),
		"additionalProperties": false,
	}
}
