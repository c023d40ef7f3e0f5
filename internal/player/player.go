// Package player manages the accounts that own Minesweeper games.
package player

import (
	"github.com/ferdiebergado/thinkbox/internal/model"
	"github.com/ferdiebergado/thinkbox/internal/platform/db"
)

type Player struct {
	model.Model
	Email        string
	PasswordHash string
}

type Module struct {
	repo    *SQLRepository
	svc     *service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Service() Service {
	return m.svc
}

func NewModule(exec db.Executor) *Module {
	repo := NewRepository(exec)
	svc := NewService(repo)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: NewHandler(svc),
	}
}
