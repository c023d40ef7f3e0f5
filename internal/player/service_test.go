package player_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/model"
	"github.com/ferdiebergado/thinkbox/internal/player"
	"github.com/google/go-cmp/cmp"
)

func TestService_List(t *testing.T) {
	t.Parallel()

	now := time.Now()
	players := []player.Player{
		{Model: model.Model{ID: "1", CreatedAt: now, UpdatedAt: now}, Email: "a@example.com"},
		{Model: model.Model{ID: "2", CreatedAt: now, UpdatedAt: now}, Email: "b@example.com"},
	}
	errDB := errors.New("db error")

	tests := []struct {
		name    string
		repo    player.Repository
		want    []player.Player
		wantErr error
	}{
		{
			name: "returns players",
			repo: &player.StubRepo{
				ListFunc: func(_ context.Context) ([]player.Player, error) {
					return players, nil
				},
			},
			want: players,
		},
		{
			name: "repository fails",
			repo: &player.StubRepo{
				ListFunc: func(_ context.Context) ([]player.Player, error) {
					return nil, errDB
				},
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := player.NewService(tt.repo)
			got, err := svc.List(t.Context())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.List() = %v, want: %v", err, tt.wantErr)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("svc.List() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_FindByEmail(t *testing.T) {
	t.Parallel()

	repo := &player.StubRepo{
		FindByEmailFunc: func(_ context.Context, email string) (*player.Player, error) {
			if email == "ana@example.com" {
				return &player.Player{Model: model.Model{ID: "7"}, Email: email}, nil
			}
			return nil, player.ErrNotFound
		},
	}
	svc := player.NewService(repo)

	p, err := svc.FindByEmail(t.Context(), "ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != "7" {
		t.Errorf("p.ID = %q, want: %q", p.ID, "7")
	}

	if _, err := svc.FindByEmail(t.Context(), "nobody@example.com"); !errors.Is(err, player.ErrNotFound) {
		t.Errorf("svc.FindByEmail() = %v, want: %v", err, player.ErrNotFound)
	}
}
