package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sozercan/tour-guide/apimodels"
	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/i18n"
)

const maxRequestBytes = 16 << 10

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, apimodels.CategoriesResponse{
		Language:   lang.String(),
		Categories: s.catalog.Categories(lang),
	})
}

func (s *Server) handleTours(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	tours, err := s.catalog.Filter(lang, category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, apimodels.ToursResponse{
		Language: lang.String(),
		Category: category,
		Tours:    tours,
	})
}

func (s *Server) handleTour(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tour, err := s.catalog.Tour(lang, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, catalog.ErrTourNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, tour)
}

// handleRecommend always answers 200 once the request is well formed: a
// failed recommendation is reported as a null tourId.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req apimodels.RecommendationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	lang, err := i18n.Parse(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	slog.Debug("Received recommendation request", "language", lang, "prompt_length", len(req.Prompt))

	tours := s.catalog.Tours(lang)
	resp := apimodels.RecommendationResponse{}
	if id, ok := s.recommender.Recommend(r.Context(), req.Prompt, tours, lang); ok {
		for i := range tours {
			if tours[i].ID == id {
				resp.TourID = &tours[i].ID
				resp.Tour = &tours[i]
				break
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: err.Error()})
}
