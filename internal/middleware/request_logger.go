package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/metrics"
)

// LogRequest logs every request once it has been served and counts it in the metrics.
// It expects InjectWriter to run first.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, bytes := http.StatusOK, -1
		if writer, ok := w.(*SafeResponseWriter); ok {
			status, bytes = writer.Status(), writer.BytesWritten()
		}

		metrics.RecordRequest(r.Method, status)
		slog.Info("incoming request",
			"user_agent", r.UserAgent(),
			"ip", ClientIP(r),
			"method", r.Method,
			"url", r.URL.String(),
			"proto", r.Proto,
			slog.Int("status_code", status),
			slog.Int("bytes", bytes),
			"duration", time.Since(start),
		)
	})
}

// ClientIP extracts the client's IP address from the request.
func ClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
