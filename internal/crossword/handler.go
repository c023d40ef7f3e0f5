package crossword

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/metrics"
	errx "github.com/ferdiebergado/thinkbox/internal/pkg/error"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type Request struct {
	Structure []string `json:"structure" validate:"required,min=1,max=32,dive,max=32"`
	Words     []string `json:"words" validate:"required,min=1,max=20000,dive,max=32"`
}

type Entry struct {
	Variable
	Word string `json:"word"`
}

type Response struct {
	Height  int        `json:"height"`
	Width   int        `json:"width"`
	Grid    [][]string `json:"grid"`
	Lines   []string   `json:"lines"`
	Entries []Entry    `json:"entries"`
}

// Generate fills the structure with the words and answers with the grid.
// With ?format=png the grid is returned as an image.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	structure, err := StructureFromRows(req.Structure)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"structure": err.Error()})
		return
	}

	words, err := NormalizeWords(req.Words)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"words": err.Error()})
		return
	}

	cw, err := New(structure, words)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"structure": err.Error()})
		return
	}

	start := time.Now()
	a, err := NewCreator(cw).Solve(r.Context())
	metrics.ObserveSolve(metrics.SolverCrossword, start, err)
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "png" {
		var buf bytes.Buffer
		if err := cw.EncodePNG(&buf, a); err != nil {
			web.RespondInternalServerError(w, err)
			return
		}
		w.Header().Set(web.HeaderContentType, "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
		return
	}

	web.RespondOK(w, nil, newResponse(cw, a))
}

func newResponse(cw *Crossword, a Assignment) *Response {
	entries := make([]Entry, 0, len(a))
	for _, v := range cw.Variables {
		entries = append(entries, Entry{Variable: v, Word: a[v]})
	}

	return &Response{
		Height:  cw.Height,
		Width:   cw.Width,
		Grid:    cw.LetterGrid(a),
		Lines:   cw.Lines(a),
		Entries: entries,
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errx.IsContextError(err):
		web.RespondGatewayTimeout(w, err, message.TimedOut)
	case errors.Is(err, ErrNoSolution):
		web.RespondUnprocessableEntity(w, err, "No solution.", map[string]string{"words": "no assignment fills every slot"})
	default:
		web.RespondInternalServerError(w, err)
	}
}
