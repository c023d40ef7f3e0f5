package player

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type PlayerData struct {
	ID        string          `json:"id,omitempty"`
	Email     string          `json:"email,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitzero"`
	UpdatedAt time.Time       `json:"updated_at,omitzero"`
}

type ListResponse struct {
	Players []PlayerData `json:"players"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.svc.List(r.Context())
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	data := make([]PlayerData, 0, len(players))
	for _, p := range players {
		data = append(data, PlayerData{
			ID:        p.ID,
			Email:     p.Email,
			Metadata:  p.Metadata,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}

	web.RespondOK(w, nil, &ListResponse{Players: data})
}
