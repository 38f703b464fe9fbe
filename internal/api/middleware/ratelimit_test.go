package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lamprea-admin/internal/api/handler/dto"
	"lamprea-admin/internal/config"
)

func TestRateLimiterMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("blocks requests exceeding the burst", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}
		handler := NewRateLimiterMiddleware(cfg, logger).Middleware(okHandler)

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "127.0.0.1:12345"
			last = httptest.NewRecorder()
			handler.ServeHTTP(last, req)
		}

		if last.Code != http.StatusTooManyRequests {
			t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, last.Code)
		}
		var resp dto.ErrorResponse
		if err := json.Unmarshal(last.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected a JSON error body, got %q", last.Body.String())
		}
		if resp.Error.Message == "" {
			t.Error("expected an error message in the throttled response")
		}
	})

	t.Run("tracks clients separately by IP", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}
		handler := NewRateLimiterMiddleware(cfg, logger).Middleware(okHandler)

		first := httptest.NewRequest(http.MethodGet, "/", nil)
		first.RemoteAddr = "10.0.0.1:1000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, first)

		second := httptest.NewRequest(http.MethodGet, "/", nil)
		second.RemoteAddr = "10.0.0.2:1000"
		rec2 := httptest.NewRecorder()
		handler.ServeHTTP(rec2, second)

		if rec2.Code != http.StatusOK {
			t.Errorf("expected fresh client to pass, got %d", rec2.Code)
		}
	})

	t.Run("disabled limiter passes everything through", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: false}
		handler := NewRateLimiterMiddleware(cfg, logger).Middleware(okHandler)

		for i := 0; i < 10; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "127.0.0.1:12345"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
		}
	})

	t.Run("honours X-Forwarded-For", func(t *testing.T) {
		cfg := config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}
		rl := NewRateLimiterMiddleware(cfg, logger)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		if got := rl.extractIP(req); got != "203.0.113.9" {
			t.Errorf("expected forwarded client IP, got %s", got)
		}
	})
}
