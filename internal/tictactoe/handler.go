package tictactoe

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/metrics"
	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

type MoveRequest struct {
	Board [][]string `json:"board" validate:"required,len=3,dive,len=3"`
}

type PlayRequest struct {
	Board [][]string `json:"board" validate:"required,len=3,dive,len=3"`
	Move  *Action    `json:"move" validate:"required"`
}

type GameResponse struct {
	Board    [][]string `json:"board"`
	Player   string     `json:"player,omitempty"`
	Move     *Action    `json:"move,omitempty"`
	Winner   string     `json:"winner,omitempty"`
	Terminal bool       `json:"terminal"`
	Utility  int        `json:"utility"`
}

func newGameResponse(b Board, move *Action) *GameResponse {
	res := &GameResponse{
		Board:    b.Rows(),
		Move:     move,
		Winner:   string(b.Winner()),
		Terminal: b.Terminal(),
		Utility:  b.Utility(),
	}
	if !res.Terminal {
		res.Player = string(b.Player())
	}
	return res
}

// Move returns the optimal move for the player to move without applying it.
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[MoveRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	board, err := FromRows(req.Board)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, "Invalid board.", map[string]string{"board": err.Error()})
		return
	}

	start := time.Now()
	action, ok := Minimax(board)
	metrics.ObserveSolve(metrics.SolverTicTacToe, start, nil)

	if !ok {
		msg := "Game over."
		web.RespondOK(w, &msg, newGameResponse(board, nil))
		return
	}

	res := newGameResponse(board, &action)
	web.RespondOK(w, nil, res)
}

// Play applies the human move and answers with the computer's reply.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[PlayRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	board, err := FromRows(req.Board)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, "Invalid board.", map[string]string{"board": err.Error()})
		return
	}

	if board.Terminal() {
		web.RespondConflict(w, errors.New("play on a finished board"), "Game over.", nil)
		return
	}

	board, err = board.Result(*req.Move)
	if err != nil {
		web.RespondUnprocessableEntity(w, err, "Invalid move.", map[string]string{"move": err.Error()})
		return
	}

	var reply *Action
	if !board.Terminal() {
		start := time.Now()
		action, _ := Minimax(board)
		metrics.ObserveSolve(metrics.SolverTicTacToe, start, nil)

		board, err = board.Result(action)
		if err != nil {
			web.RespondInternalServerError(w, err)
			return
		}
		reply = &action
		slog.Debug("computer moved", "action", action.String())
	}

	web.RespondOK(w, nil, newGameResponse(board, reply))
}
