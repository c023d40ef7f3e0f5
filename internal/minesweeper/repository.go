package minesweeper

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ferdiebergado/thinkbox/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("minesweeper repository: game not found")
	ErrQueryFailed = errors.New("minesweeper repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(exec db.Executor) *SQLRepository {
	return &SQLRepository{db: exec}
}

const queryGameCreate = `
INSERT INTO minesweeper_games (id, owner_id, status, state)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, s *Session) error {
	state, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", s.ID, err)
	}

	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryGameCreate, s.ID, s.OwnerID, s.Status, state)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("%w: create game %s: %v", ErrQueryFailed, s.ID, err)
	}
	return nil
}

const queryGameFind = `
SELECT id, owner_id, status, state, created_at, updated_at
FROM minesweeper_games
WHERE id = $1 AND owner_id = $2
`

func (r *SQLRepository) Find(ctx context.Context, ownerID, id string) (*Session, error) {
	return r.find(ctx, queryGameFind, ownerID, id)
}

// FindForUpdate locks the row until the surrounding transaction ends.
func (r *SQLRepository) FindForUpdate(ctx context.Context, ownerID, id string) (*Session, error) {
	return r.find(ctx, queryGameFind+"FOR UPDATE", ownerID, id)
}

func (r *SQLRepository) find(ctx context.Context, query, ownerID, id string) (*Session, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	s, err := scanSession(exec.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find game %s: %v", ErrQueryFailed, id, err)
	}
	return s, nil
}

const queryGameList = `
SELECT id, owner_id, status, state, created_at, updated_at
FROM minesweeper_games
WHERE owner_id = $1
ORDER BY created_at DESC
`

func (r *SQLRepository) List(ctx context.Context, ownerID string) ([]*Session, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, queryGameList, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list games: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("minesweeper repository: scan row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("minesweeper repository: iterate over game rows: %w", err)
	}

	return sessions, nil
}

const queryGameUpdate = `
UPDATE minesweeper_games
SET status = $1, state = $2, updated_at = NOW()
WHERE id = $3 AND owner_id = $4
RETURNING updated_at
`

func (r *SQLRepository) Update(ctx context.Context, s *Session) error {
	state, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", s.ID, err)
	}

	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryGameUpdate, s.Status, state, s.ID, s.OwnerID)
	if err := row.Scan(&s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: update game %s: %v", ErrQueryFailed, s.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var (
		s     Session
		state []byte
	)
	if err := row.Scan(&s.ID, &s.OwnerID, &s.Status, &state, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(state, &s); err != nil {
		return nil, fmt.Errorf("decode game state %s: %w", s.ID, err)
	}

	if s.Flags == nil {
		s.Flags = make(CellSet)
	}

	return &s, nil
}
