// Package auth registers players and issues the bearer tokens that guard
// the stateful endpoints.
package auth

import (
	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/platform/hash"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/player"
)

// Token audiences. An access token never refreshes and a refresh token never authorizes.
const (
	AudienceAccess  = "access"
	AudienceRefresh = "refresh"
)

type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
}

type Module struct {
	svc     *Service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(cfg *config.JWT, players player.Service, providers *Providers) *Module {
	svc := NewService(cfg, players, providers)
	return &Module{
		svc:     svc,
		handler: NewHandler(svc),
	}
}
