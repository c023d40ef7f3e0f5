package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/middleware"
	timex "github.com/ferdiebergado/thinkbox/internal/pkg/time"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := &config.RateLimit{
		Requests: 2,
		Window:   timex.Duration{Duration: time.Minute},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := middleware.RateLimit(cfg)(handler)

	wantCodes := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, want := range wantCodes {
		req := httptest.NewRequest(http.MethodPost, "/pagerank", http.NoBody)
		req.RemoteAddr = "192.0.2.10:5555"
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)

		if rec.Code != want {
			t.Errorf("request %d: rec.Code = %d, want: %d", i+1, rec.Code, want)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/pagerank", http.NoBody)
	req.RemoteAddr = "192.0.2.11:5555"
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client: rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}
}
