package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/metrics"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/go-chi/httprate"
)

var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimit allows cfg.Requests per cfg.Window from each client IP.
func RateLimit(cfg *config.RateLimit) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Requests,
		cfg.Window.Duration,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return ClientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			metrics.RecordRateLimited()
			web.RespondTooManyRequests(w, ErrRateLimited, message.TooManyRequests)
		}),
	)
}
