package llm

import (
	"context"
	"errors"
)

// Provider is a generative model that, given instructions and an output
// schema, returns structured text.
type Provider interface {
	Generate(ctx context.Context, req Request, opts ...Option) (*Response, error)
}

var ErrEmptyResponse = errors.New("model returned no content")

// Request is a single turn sent to a model.
type Request struct {
	// SystemInstruction carries the role and rules for the model
	SystemInstruction string

	// UserContent is the end user's text, passed through as-is
	UserContent string

	// Schema constrains the reply to a JSON object, when set
	Schema *Schema
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

func WithModel(model string) Option {
	return func(o *Options) {
		if model != "" {
			o.Model = model
		}
	}
}

func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxTokens = n
		}
	}
}

func applyOptions(defaults Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
