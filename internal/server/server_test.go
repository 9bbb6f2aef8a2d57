package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/tour-guide/apimodels"
	"github.com/sozercan/tour-guide/internal/catalog"
	"github.com/sozercan/tour-guide/internal/config"
	"github.com/sozercan/tour-guide/internal/i18n"
)

type stubRecommender struct {
	mu     sync.Mutex
	id     string
	ok     bool
	prompt string
	lang   i18n.Language
	tours  int
}

func (s *stubRecommender) Recommend(ctx context.Context, userPrompt string, tours []catalog.Tour, lang i18n.Language) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = userPrompt
	s.lang = lang
	s.tours = len(tours)
	return s.id, s.ok
}

func newTestServer(t *testing.T, rec Recommender) *httptest.Server {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>Joseph Tours</h1>"), 0o600))

	s := New(config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		StaticDir:    static,
	}, cat, rec)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postRecommendation(t *testing.T, url, body string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(url+"/api/v1/recommendations", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	var body map[string]string
	status := getJSON(t, ts.URL+"/api/v1/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestListTours(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	var all apimodels.ToursResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/tours?lang=en", &all))
	assert.Equal(t, "en", all.Language)
	assert.Equal(t, catalog.CategoryAll, all.Category)
	assert.Len(t, all.Tours, 7)

	var stays apimodels.ToursResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/tours?category=stay", &stays))
	assert.Equal(t, "es", stays.Language)
	require.Len(t, stays.Tours, 2)
	assert.Equal(t, "Estadía", stays.Tours[0].Category)

	var errBody apimodels.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/v1/tours?category=cruise", &errBody))
	assert.Contains(t, errBody.Error, "unknown category")

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/v1/tours?lang=fr", &errBody))
	assert.Contains(t, errBody.Error, "unsupported language")
}

func TestGetTour(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	var tour catalog.Tour
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/tours/reserva1?lang=en", &tour))
	assert.Equal(t, "reserva1", tour.ID)
	assert.Equal(t, "Private Island Booking", tour.Title)

	var errBody apimodels.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/v1/tours/nope", &errBody))
}

func TestCategories(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	var body apimodels.CategoriesResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/categories?lang=en", &body))
	require.Len(t, body.Categories, 4)
	assert.Equal(t, "All", body.Categories[0].Label)
}

func TestRecommendFound(t *testing.T) {
	rec := &stubRecommender{id: "pasadia3", ok: true}
	ts := newTestServer(t, rec)

	status, body := postRecommendation(t, ts.URL, `{"prompt": "traveling with two small kids", "language": "en"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pasadia3", body["tourId"])

	tour, ok := body["tour"].(map[string]interface{})
	require.True(t, ok, "expected tour in response")
	assert.Equal(t, "Family Day Trip", tour["title"])

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, "traveling with two small kids", rec.prompt)
	assert.Equal(t, i18n.English, rec.lang)
	assert.Equal(t, 7, rec.tours)
}

func TestRecommendNoneIsNotAnError(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{ok: false})

	status, body := postRecommendation(t, ts.URL, `{"prompt": "beach"}`)
	assert.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "tourId")
	assert.Nil(t, body["tourId"])
	assert.NotContains(t, body, "tour")
}

func TestRecommendUnknownIDFromRecommender(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{id: "ghost", ok: true})

	status, body := postRecommendation(t, ts.URL, `{"prompt": "beach"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, body["tourId"])
}

func TestRecommendBadRequests(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	status, body := postRecommendation(t, ts.URL, `{"prompt": `)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "invalid request")

	status, body = postRecommendation(t, ts.URL, `{"prompt": "beach", "language": "de"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "unsupported language")
}

func TestStaticFiles(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubRecommender{})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
