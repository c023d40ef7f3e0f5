package pagerank

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/metrics"
	errx "github.com/ferdiebergado/thinkbox/internal/pkg/error"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

const (
	MethodSample  = "sample"
	MethodIterate = "iterate"
	MethodBoth    = "both"
)

var errTooManyPages = errors.New("pagerank: too many pages")

type Handler struct {
	cfg *config.PageRank
}

func NewHandler(cfg *config.PageRank) *Handler {
	return &Handler{cfg: cfg}
}

type Request struct {
	Pages   map[string][]string `json:"pages" validate:"required,min=1"`
	Damping *float64            `json:"damping,omitempty" validate:"omitempty,gte=0,lte=1"`
	Samples *int                `json:"samples,omitempty" validate:"omitempty,gte=1,lte=1000000"`
	Seed    *uint64             `json:"seed,omitempty"`
	Method  string              `json:"method,omitempty" validate:"omitempty,oneof=sample iterate both"`
}

type SamplingResult struct {
	Samples int   `json:"samples"`
	Ranks   Ranks `json:"ranks"`
}

type IterationResult struct {
	Threshold float64 `json:"threshold"`
	Ranks     Ranks   `json:"ranks"`
}

type Response struct {
	Damping   float64          `json:"damping"`
	Sampling  *SamplingResult  `json:"sampling,omitempty"`
	Iteration *IterationResult `json:"iteration,omitempty"`
}

// Rank answers with the PageRank of every page, by sampling, by iteration or both.
func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if h.cfg.MaxPages > 0 && len(req.Pages) > h.cfg.MaxPages {
		err := fmt.Errorf("%w: %d exceeds %d", errTooManyPages, len(req.Pages), h.cfg.MaxPages)
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{
			"pages": fmt.Sprintf("must have at most %d pages", h.cfg.MaxPages),
		})
		return
	}

	corpus := NewCorpus(req.Pages)
	res := &Response{Damping: h.damping(req.Damping)}

	if req.Method != MethodIterate {
		n := h.samples(req.Samples)
		start := time.Now()
		ranks, err := Sample(r.Context(), corpus, res.Damping, n, Options{Chains: h.cfg.Chains, Seed: req.Seed})
		metrics.ObserveSolve(metrics.SolverPageRank, start, err)
		if err != nil {
			respondError(w, err)
			return
		}
		res.Sampling = &SamplingResult{Samples: n, Ranks: ranks}
	}

	if req.Method != MethodSample {
		threshold := h.threshold()
		start := time.Now()
		ranks, err := Iterate(corpus, res.Damping, threshold)
		metrics.ObserveSolve(metrics.SolverPageRank, start, err)
		if err != nil {
			respondError(w, err)
			return
		}
		res.Iteration = &IterationResult{Threshold: threshold, Ranks: ranks}
	}

	web.RespondOK(w, nil, res)
}

func (h *Handler) damping(d *float64) float64 {
	switch {
	case d != nil:
		return *d
	case h.cfg.Damping > 0:
		return h.cfg.Damping
	default:
		return DefaultDamping
	}
}

func (h *Handler) samples(n *int) int {
	switch {
	case n != nil:
		return *n
	case h.cfg.Samples > 0:
		return h.cfg.Samples
	default:
		return DefaultSamples
	}
}

func (h *Handler) threshold() float64 {
	if h.cfg.Threshold > 0 {
		return h.cfg.Threshold
	}
	return DefaultThreshold
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errx.IsContextError(err):
		web.RespondGatewayTimeout(w, err, message.TimedOut)
	case errors.Is(err, ErrEmptyCorpus), errors.Is(err, ErrInvalidDamping),
		errors.Is(err, ErrInvalidSamples), errors.Is(err, ErrNotConverged):
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"pages": err.Error()})
	default:
		web.RespondInternalServerError(w, err)
	}
}
