package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/thinkbox/internal/player"
)

type StubService struct {
	RegisterFunc func(ctx context.Context, params RegisterParams) (*player.Player, error)
	LoginFunc    func(ctx context.Context, params LoginParams) (*Tokens, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (*Tokens, error)
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (*player.Player, error) {
	if s.RegisterFunc == nil {
		return nil, errors.New("Register() not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (*Tokens, error) {
	if s.LoginFunc == nil {
		return nil, errors.New("Login() not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	if s.RefreshFunc == nil {
		return nil, errors.New("Refresh() not implemented by stub")
	}
	return s.RefreshFunc(ctx, refreshToken)
}
