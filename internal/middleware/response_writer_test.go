package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/thinkbox/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("records status and size", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		w := middleware.NewSafeResponseWriter(context.Background(), rec)
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte("hello")); err != nil {
			t.Fatal(err)
		}

		if got, want := w.Status(), http.StatusCreated; got != want {
			t.Errorf("w.Status() = %d, want: %d", got, want)
		}

		if got, want := w.BytesWritten(), 5; got != want {
			t.Errorf("w.BytesWritten() = %d, want: %d", got, want)
		}
	})

	t.Run("drops writes after cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rec := httptest.NewRecorder()
		w := middleware.NewSafeResponseWriter(ctx, rec)
		w.WriteHeader(http.StatusOK)
		n, err := w.Write([]byte("hello"))
		if err != nil || n != 0 {
			t.Errorf("w.Write() = %d, %v, want: 0, nil", n, err)
		}

		if rec.Body.Len() != 0 {
			t.Errorf("rec.Body.Len() = %d, want: 0", rec.Body.Len())
		}
	})
}
