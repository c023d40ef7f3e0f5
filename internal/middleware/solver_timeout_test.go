package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/middleware"
)

func TestSolverTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{"with timeout", time.Second, true},
		{"disabled", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hasDeadline bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, hasDeadline = r.Context().Deadline()
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
			middleware.SolverTimeout(tt.timeout)(handler).ServeHTTP(httptest.NewRecorder(), req)

			if hasDeadline != tt.wantDeadline {
				t.Errorf("deadline set = %t, want: %t", hasDeadline, tt.wantDeadline)
			}
		})
	}
}
