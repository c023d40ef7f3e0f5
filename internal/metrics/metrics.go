// Package metrics exposes Prometheus instrumentation for the solvers and the HTTP layer.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SolverTicTacToe   = "tictactoe"
	SolverMinesweeper = "minesweeper"
	SolverPageRank    = "pagerank"
	SolverCrossword   = "crossword"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinkbox_solve_total",
		Help: "Total number of solver runs by solver and outcome",
	}, []string{"solver", "outcome"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "thinkbox_solve_duration_seconds",
		Help:    "Wall-clock time spent inside a solver",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}, []string{"solver"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "thinkbox_http_requests_total",
		Help: "Total number of HTTP requests by method and status code",
	}, []string{"method", "code"})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thinkbox_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// ObserveSolve records one solver run that started at start.
func ObserveSolve(solver string, start time.Time, err error) {
	label := normalizeSolverLabel(solver)
	solveDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	solveTotal.WithLabelValues(label, outcome(err)).Inc()
}

// RecordRequest counts one served HTTP request.
func RecordRequest(method string, status int) {
	httpRequestsTotal.WithLabelValues(normalizeMethodLabel(method), strconv.Itoa(status)).Inc()
}

// RecordRateLimited counts one rejected request.
func RecordRateLimited() {
	rateLimitedTotal.Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}

func normalizeSolverLabel(solver string) string {
	switch s := strings.ToLower(strings.TrimSpace(solver)); s {
	case SolverTicTacToe, SolverMinesweeper, SolverPageRank, SolverCrossword:
		return s
	default:
		return "unknown"
	}
}

func normalizeMethodLabel(method string) string {
	switch m := strings.ToUpper(method); m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead:
		return m
	default:
		return "OTHER"
	}
}
