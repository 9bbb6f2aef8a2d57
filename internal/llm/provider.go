package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sozercan/tour-guide/internal/config"
)

// New returns the provider selected by cfg.LLM.Provider.
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	slog.Info("Creating LLM provider", "provider", cfg.LLM.Provider)

	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		return NewGemini(ctx, &cfg.Gemini, nil)
	case config.ProviderOpenAI:
		return NewOpenAI(&cfg.OpenAI, false)
	case config.ProviderAzure:
		return NewOpenAI(&cfg.OpenAI, true)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}
