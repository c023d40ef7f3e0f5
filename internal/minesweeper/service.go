package minesweeper

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/metrics"
	"github.com/ferdiebergado/thinkbox/internal/platform/db"
	"github.com/google/uuid"
)

// Repository persists sessions. Every lookup is scoped to the owner.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Find(ctx context.Context, ownerID, id string) (*Session, error)
	FindForUpdate(ctx context.Context, ownerID, id string) (*Session, error)
	List(ctx context.Context, ownerID string) ([]*Session, error)
	Update(ctx context.Context, s *Session) error
}

type CreateParams struct {
	Height int
	Width  int
	Mines  int
	Seed   *uint64
}

type Service struct {
	repo    Repository
	txMgr   db.TxManager
	newRand func(seed *uint64) *rand.Rand
	newID   func() string
}

func NewService(repo Repository, txMgr db.TxManager) *Service {
	return &Service{
		repo:    repo,
		txMgr:   txMgr,
		newRand: newRand,
		newID:   uuid.NewString,
	}
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (s *Service) Create(ctx context.Context, ownerID string, params CreateParams) (*Session, error) {
	session, err := NewSession(params.Height, params.Width, params.Mines, s.newRand(params.Seed))
	if err != nil {
		return nil, err
	}

	session.ID = s.newID()
	session.OwnerID = ownerID

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create game for %s: %w", ownerID, err)
	}

	slog.Info("Minesweeper game created.", "game_id", session.ID, "height", params.Height, "width", params.Width, "mines", params.Mines)
	return session, nil
}

// checkID rejects ids that cannot name a game, so they never reach the uuid column.
func checkID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %q is not a game id", ErrNotFound, id)
	}
	return nil
}

func (s *Service) Find(ctx context.Context, ownerID, id string) (*Session, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	session, err := s.repo.Find(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("find game %s: %w", id, err)
	}
	return session, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Session, error) {
	sessions, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list games of %s: %w", ownerID, err)
	}
	return sessions, nil
}

func (s *Service) Reveal(ctx context.Context, ownerID, id string, c Cell) (*Session, error) {
	return s.update(ctx, ownerID, id, func(session *Session) error {
		return session.Reveal(c)
	})
}

func (s *Service) Flag(ctx context.Context, ownerID, id string, c Cell) (*Session, error) {
	return s.update(ctx, ownerID, id, func(session *Session) error {
		return session.ToggleFlag(c)
	})
}

// AIMove lets the knowledge-based player make one move and reports the cell it chose.
func (s *Service) AIMove(ctx context.Context, ownerID, id string) (*Session, Cell, error) {
	var played Cell
	session, err := s.update(ctx, ownerID, id, func(session *Session) error {
		start := time.Now()
		c, err := session.AIMove(s.newRand(nil))
		metrics.ObserveSolve(metrics.SolverMinesweeper, start, err)
		played = c
		return err
	})
	return session, played, err
}

func (s *Service) update(ctx context.Context, ownerID, id string, move func(*Session) error) (*Session, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var session *Session
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		session, err = s.repo.FindForUpdate(txCtx, ownerID, id)
		if err != nil {
			return fmt.Errorf("find game %s: %w", id, err)
		}

		if err := move(session); err != nil {
			return err
		}

		if err := s.repo.Update(txCtx, session); err != nil {
			return fmt.Errorf("update game %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Minesweeper game updated.", "game_id", id, "status", session.Status)
	return session, nil
}
