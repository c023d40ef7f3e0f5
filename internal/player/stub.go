package player

import (
	"context"
	"errors"
)

type StubService struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (*Player, error)
	FindByEmailFunc func(ctx context.Context, email string) (*Player, error)
	FindFunc        func(ctx context.Context, id string) (*Player, error)
	ListFunc        func(ctx context.Context) ([]Player, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, params CreateParams) (*Player, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) FindByEmail(ctx context.Context, email string) (*Player, error) {
	if s.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return s.FindByEmailFunc(ctx, email)
}

func (s *StubService) Find(ctx context.Context, id string) (*Player, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, id)
}

func (s *StubService) List(ctx context.Context) ([]Player, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (*Player, error)
	FindByEmailFunc func(ctx context.Context, email string) (*Player, error)
	FindFunc        func(ctx context.Context, id string) (*Player, error)
	ListFunc        func(ctx context.Context) ([]Player, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (*Player, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*Player, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}

func (r *StubRepo) Find(ctx context.Context, id string) (*Player, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, id)
}

func (r *StubRepo) List(ctx context.Context) ([]Player, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}
