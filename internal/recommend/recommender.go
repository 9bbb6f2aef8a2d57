// Package recommend matches a traveler's free-text request to one tour in
// the catalog using a generative model. The model's answer is untrusted:
// only ids present in the catalog passed to the call are ever returned.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/i18n"
	"github.com/sozercan/tour-guide/internal/llm"
	"github.com/sozercan/tour-guide/internal/metrics"
)

const DefaultTimeout = 15 * time.Second

var errNoTours = errors.New("no tours to choose from")

type Recommender struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *slog.Logger
}

type Option func(*Recommender)

// WithTimeout bounds each call. Zero or negative leaves only the caller's
// context deadline in effect.
func WithTimeout(d time.Duration) Option {
	return func(r *Recommender) {
		r.timeout = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Recommender) {
		if l != nil {
			r.logger = l
		}
	}
}

func New(provider llm.Provider, opts ...Option) *Recommender {
	r := &Recommender{
		provider: provider,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend asks the model for the tour that best fits userPrompt and
// returns its id. ok is false when no recommendation could be made, for any
// reason: failures are logged here and never returned.
func (r *Recommender) Recommend(ctx context.Context, userPrompt string, tours []catalog.Tour, lang i18n.Language) (tourID string, ok bool) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	id, err := r.recommend(ctx, userPrompt, tours, lang)
	switch {
	case err == nil:
		metrics.Recommendations.WithLabelValues(metrics.OutcomeFound).Inc()
		r.logger.Info("Tour recommended", "tourId", id, "language", lang, "duration", time.Since(start))
		return id, true

	case errors.Is(err, errUnknownTour):
		metrics.Recommendations.WithLabelValues(metrics.OutcomeRejected).Inc()
		r.logger.Warn("Discarding recommendation for unknown tour", "error", err)

	case errors.Is(err, errMissingTourID), errors.Is(err, errEmptyReply), errors.Is(err, errNoTours):
		metrics.Recommendations.WithLabelValues(metrics.OutcomeNone).Inc()
		r.logger.Info("No tour recommended", "reason", err)

	default:
		metrics.Recommendations.WithLabelValues(metrics.OutcomeError).Inc()
		r.logger.Error("Tour recommendation failed", "error", err, "duration", time.Since(start))
	}
	return "", false
}

func (r *Recommender) recommend(ctx context.Context, userPrompt string, tours []catalog.Tour, lang i18n.Language) (string, error) {
	if len(tours) == 0 {
		return "", errNoTours
	}

	instruction, err := buildInstruction(lang, catalog.Summarize(tours))
	if err != nil {
		return "", err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("Requesting tour recommendation", "tours", len(tours), "language", lang)
	resp, err := r.provider.Generate(ctx, llm.Request{
		SystemInstruction: instruction,
		UserContent:       userPrompt,
		Schema:            tourIDSchema,
	})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	if resp == nil {
		return "", errEmptyReply
	}

	id, err := parseReply(resp.Content)
	if err != nil {
		return "", err
	}
	return validateTourID(id, tours)
}
