package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"
	HeaderVary         = "Vary"

	AllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"
)

// CORS allows browser clients served from allowedOrigin to call the API.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(HeaderVary, "Origin")

			if origin := r.Header.Get("Origin"); origin != "" && origin == allowedOrigin {
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Set(HeaderAllowCreds, "true")
				w.Header().Set(HeaderAllowMethods, AllowedMethods)
				w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
