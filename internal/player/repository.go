package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/thinkbox/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

const codeUniqueViolation = "23505"

var (
	ErrNotFound    = errors.New("player repository: player not found")
	ErrDuplicate   = errors.New("player repository: email already taken")
	ErrQueryFailed = errors.New("player repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(exec db.Executor) *SQLRepository {
	return &SQLRepository{db: exec}
}

type CreateParams struct {
	Email        string
	PasswordHash string
}

const queryPlayerCreate = `
INSERT INTO players (email, password_hash)
VALUES ($1, $2)
RETURNING id, email, metadata, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (*Player, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryPlayerCreate, params.Email, params.PasswordHash)

	var p Player
	if err := row.Scan(&p.ID, &p.Email, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: create player with email %s: %v", ErrQueryFailed, params.Email, err)
	}

	p.PasswordHash = params.PasswordHash
	return &p, nil
}

const queryPlayerFindByEmail = `
SELECT id, email, password_hash, metadata, created_at, updated_at
FROM players
WHERE email = $1
LIMIT 1
`

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*Player, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryPlayerFindByEmail, email)

	var p Player
	if err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find player with email %s: %v", ErrQueryFailed, email, err)
	}
	return &p, nil
}

const queryPlayerFind = `
SELECT id, email, metadata, created_at, updated_at
FROM players
WHERE id = $1
`

func (r *SQLRepository) Find(ctx context.Context, id string) (*Player, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	row := exec.QueryRowContext(ctx, queryPlayerFind, id)

	var p Player
	if err := row.Scan(&p.ID, &p.Email, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find player with id %s: %v", ErrQueryFailed, id, err)
	}
	return &p, nil
}

const queryPlayerList = `
SELECT id, email, metadata, created_at, updated_at
FROM players
ORDER BY created_at
`

func (r *SQLRepository) List(ctx context.Context) ([]Player, error) {
	exec := db.ExecutorFromContext(ctx, r.db)
	rows, err := exec.QueryContext(ctx, queryPlayerList)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Email, &p.Metadata, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("player repository: scan row: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player repository: iterate over player rows: %w", err)
	}

	return players, nil
}
