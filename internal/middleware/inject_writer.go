package middleware

import "net/http"

// InjectWriter wraps the response writer in a SafeResponseWriter bound to the request context.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}
