package minesweeper

import (
	"context"
	"errors"
)

type StubRepo struct {
	CreateFunc        func(ctx context.Context, s *Session) error
	FindFunc          func(ctx context.Context, ownerID, id string) (*Session, error)
	FindForUpdateFunc func(ctx context.Context, ownerID, id string) (*Session, error)
	ListFunc          func(ctx context.Context, ownerID string) ([]*Session, error)
	UpdateFunc        func(ctx context.Context, s *Session) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, s *Session) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, s)
}

func (r *StubRepo) Find(ctx context.Context, ownerID, id string) (*Session, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, ownerID, id)
}

func (r *StubRepo) FindForUpdate(ctx context.Context, ownerID, id string) (*Session, error) {
	if r.FindForUpdateFunc == nil {
		return nil, errors.New("FindForUpdate() not implemented by stub")
	}
	return r.FindForUpdateFunc(ctx, ownerID, id)
}

func (r *StubRepo) List(ctx context.Context, ownerID string) ([]*Session, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, ownerID)
}

func (r *StubRepo) Update(ctx context.Context, s *Session) error {
	if r.UpdateFunc == nil {
		return errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, s)
}

type StubService struct {
	CreateFunc func(ctx context.Context, ownerID string, params CreateParams) (*Session, error)
	FindFunc   func(ctx context.Context, ownerID, id string) (*Session, error)
	ListFunc   func(ctx context.Context, ownerID string) ([]*Session, error)
	RevealFunc func(ctx context.Context, ownerID, id string, c Cell) (*Session, error)
	FlagFunc   func(ctx context.Context, ownerID, id string, c Cell) (*Session, error)
	AIMoveFunc func(ctx context.Context, ownerID, id string) (*Session, Cell, error)
}

var _ GameService = (*StubService)(nil)

func (s *StubService) Create(ctx context.Context, ownerID string, params CreateParams) (*Session, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, ownerID, params)
}

func (s *StubService) Find(ctx context.Context, ownerID, id string) (*Session, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, ownerID, id)
}

func (s *StubService) List(ctx context.Context, ownerID string) ([]*Session, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, ownerID)
}

func (s *StubService) Reveal(ctx context.Context, ownerID, id string, c Cell) (*Session, error) {
	if s.RevealFunc == nil {
		return nil, errors.New("Reveal() not implemented by stub")
	}
	return s.RevealFunc(ctx, ownerID, id, c)
}

func (s *StubService) Flag(ctx context.Context, ownerID, id string, c Cell) (*Session, error) {
	if s.FlagFunc == nil {
		return nil, errors.New("Flag() not implemented by stub")
	}
	return s.FlagFunc(ctx, ownerID, id, c)
}

func (s *StubService) AIMove(ctx context.Context, ownerID, id string) (*Session, Cell, error) {
	if s.AIMoveFunc == nil {
		return nil, Cell{}, errors.New("AIMove() not implemented by stub")
	}
	return s.AIMoveFunc(ctx, ownerID, id)
}
