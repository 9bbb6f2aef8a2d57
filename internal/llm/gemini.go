package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/sozercan/tour-guide/internal/config"
)

// Gemini calls the Gemini API through the Google Gen AI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini provider. httpClient may be nil.
func NewGemini(ctx context.Context, cfg *config.GeminiConfig, httpClient *http.Client) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key cannot be empty")
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: withTrailingSlash(cfg.BaseURL)}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model}, nil
}

func (g *Gemini) Generate(ctx context.Context, req Request, opts ...Option) (*Response, error) {
	options := applyOptions(Options{
		Model:       g.model,
		Temperature: 0,
	}, opts)

	// Thinking models spend output tokens before answering, so no limit is
	// sent unless the caller asks for one.
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(float32(options.Temperature)),
	}
	if options.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(options.MaxTokens)
	}
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = geminiSchema(req.Schema)
	}

	resp, err := g.client.Models.GenerateContent(ctx, options.Model, genai.Text(req.UserContent), gc)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini: finish reason %q: %w", resp.Candidates[0].FinishReason, ErrEmptyResponse)
	}

	out := &Response{
		Content: text,
		Model:   options.Model,
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			PromptTokens:     int64(u.PromptTokenCount),
			CompletionTokens: int64(u.CandidatesTokenCount),
			TotalTokens:      int64(u.TotalTokenCount),
		}
	}
	return out, nil
}

func geminiSchema(s *Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Properties))
	order := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		props[p.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
		order = append(order, p.Name)
	}

	return &genai.Schema{
		Type:             genai.TypeObject,
		Description:      s.Description,
		Properties:       props,
		PropertyOrdering: order,
		Required:         s.required(),
	}
}
