package minesweeper

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/auth"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

type GameService interface {
	Create(ctx context.Context, ownerID string, params CreateParams) (*Session, error)
	Find(ctx context.Context, ownerID, id string) (*Session, error)
	List(ctx context.Context, ownerID string) ([]*Session, error)
	Reveal(ctx context.Context, ownerID, id string, c Cell) (*Session, error)
	Flag(ctx context.Context, ownerID, id string, c Cell) (*Session, error)
	AIMove(ctx context.Context, ownerID, id string) (*Session, Cell, error)
}

var _ GameService = (*Service)(nil)

type Handler struct {
	svc GameService
}

func NewHandler(svc GameService) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	Height int     `json:"height" validate:"gte=1,lte=64"`
	Width  int     `json:"width" validate:"gte=1,lte=64"`
	Mines  int     `json:"mines" validate:"gte=0"`
	Seed   *uint64 `json:"seed,omitempty"`
}

type MoveRequest struct {
	I int `json:"i" validate:"gte=0"`
	J int `json:"j" validate:"gte=0"`
}

// Hints are what the AI has deduced so far: unplayed safe cells and known mines.
type Hints struct {
	Safes []Cell `json:"safes"`
	Mines []Cell `json:"mines"`
}

type GameResponse struct {
	ID        string     `json:"id"`
	Status    Status     `json:"status"`
	Height    int        `json:"height"`
	Width     int        `json:"width"`
	Mines     int        `json:"mines"`
	Flags     int        `json:"flags"`
	Board     [][]string `json:"board"`
	Move      *Cell      `json:"move,omitempty"`
	Hints     *Hints     `json:"hints,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
}

func newGameResponse(s *Session, move *Cell) *GameResponse {
	res := &GameResponse{
		ID:        s.ID,
		Status:    s.Status,
		Height:    s.Game.Height,
		Width:     s.Game.Width,
		Mines:     len(s.Game.Mines),
		Flags:     len(s.Flags),
		Board:     s.Board(),
		Move:      move,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.Status == StatusPlaying {
		res.Hints = &Hints{
			Safes: s.AI.Safes.Difference(s.AI.MovesMade).Sorted(),
			Mines: s.AI.Mines.Sorted(),
		}
	}

	return res
}

type ListResponse struct {
	Games []*GameResponse `json:"games"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	s, err := h.svc.Create(r.Context(), ownerID, CreateParams(req))
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Game created."
	web.RespondCreated(w, &msg, newGameResponse(s, nil))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	sessions, err := h.svc.List(r.Context(), ownerID)
	if err != nil {
		respondError(w, err)
		return
	}

	games := make([]*GameResponse, 0, len(sessions))
	for _, s := range sessions {
		games = append(games, newGameResponse(s, nil))
	}

	web.RespondOK(w, nil, &ListResponse{Games: games})
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Find(r.Context(), ownerID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, newGameResponse(s, nil))
}

func (h *Handler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Reveal)
}

func (h *Handler) Flag(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.svc.Flag)
}

// AI lets the knowledge-based player make one move.
func (h *Handler) AI(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	s, played, err := h.svc.AIMove(r.Context(), ownerID, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, newGameResponse(s, &played))
}

type moveFunc func(ctx context.Context, ownerID, id string, c Cell) (*Session, error)

func (h *Handler) move(w http.ResponseWriter, r *http.Request, fn moveFunc) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	req, err := web.ParamsFromContext[MoveRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	c := Cell(req)
	s, err := fn(r.Context(), ownerID, r.PathValue("id"), c)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, newGameResponse(s, &c))
}

func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, err := auth.UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.InvalidUser, nil)
		return "", false
	}
	return ownerID, true
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.NotFound, nil)
	case errors.Is(err, ErrGameOver), errors.Is(err, ErrAlreadyRevealed), errors.Is(err, ErrNoMoves):
		web.RespondConflict(w, err, "Move not allowed.", map[string]string{"move": unwrapAll(err).Error()})
	case errors.Is(err, ErrOutOfBounds), errors.Is(err, ErrTooManyMines), errors.Is(err, ErrInvalidSize):
		web.RespondUnprocessableEntity(w, err, message.InvalidInput, map[string]string{"game": unwrapAll(err).Error()})
	default:
		web.RespondInternalServerError(w, err)
	}
}

// unwrapAll returns the innermost error so clients see the sentinel message only.
func unwrapAll(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
