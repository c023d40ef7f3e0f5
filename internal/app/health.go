package app

import (
	"context"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

const healthPingTimeout = 2 * time.Second

type pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// healthHandler reports whether the database answers.
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			web.Fail(w, http.StatusServiceUnavailable, err, "Database unavailable.", nil)
			return
		}

		web.RespondOK(w, nil, &HealthResponse{Status: "ok"})
	}
}
