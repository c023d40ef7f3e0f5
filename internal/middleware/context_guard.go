package middleware

import (
	"net/http"

	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

// ContextGuard stops requests whose context is already done before any work starts.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.Cancelled, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
