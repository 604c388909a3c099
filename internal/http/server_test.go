package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"charterquote/internal/config"
	httptransport "charterquote/internal/http"
	"charterquote/internal/infra"
	"charterquote/internal/modules/catalog"
	"charterquote/internal/modules/pricing"
	"charterquote/internal/modules/quote"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.QuoteConfig{MinPassengers: 2, MaxPassengers: 24, Currency: "ILS"}
	metrics := infra.NewMetrics()
	svc := quote.NewService(pricing.NewService(catalog.Default(), cfg.Currency), cfg, metrics)
	return httptransport.NewServer(httptransport.ServerDeps{
		Quote:   svc,
		Metrics: metrics,
		Logger:  zerolog.New(io.Discard),
	}).Routes()
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Fatalf("health = %d %q", w.Code, w.Body.String())
	}
}

func TestQuoteIsCountedInMetrics(t *testing.T) {
	h := newTestServer(t)

	body := `{"port_id":"limassol","vessel_class":"Mediterranean Superyacht","passengers":10,"sail_date":"2026-07-09","travel_style_id":"executive"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("quote = %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"estimate":18890`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), `charter_quotes_total{port="limassol",vessel="Mediterranean Superyacht"} 1`) {
		t.Errorf("quote counter missing from metrics:\n%s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `charter_http_requests_total{code="200",route="/api/quotes"} 1`) {
		t.Errorf("request counter missing from metrics")
	}
}
