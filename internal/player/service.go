package player

import (
	"context"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Player, error)
	FindByEmail(ctx context.Context, email string) (*Player, error)
	Find(ctx context.Context, id string) (*Player, error)
	List(ctx context.Context) ([]Player, error)
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*Player, error)
	FindByEmail(ctx context.Context, email string) (*Player, error)
	Find(ctx context.Context, id string) (*Player, error)
	List(ctx context.Context) ([]Player, error)
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Player, error) {
	p, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (*Player, error) {
	p, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find player by email: %w", err)
	}
	return p, nil
}

func (s *service) Find(ctx context.Context, id string) (*Player, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find player %s: %w", id, err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]Player, error) {
	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}
