package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/auth"
	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/model"
	timex "github.com/ferdiebergado/thinkbox/internal/pkg/time"
	"github.com/ferdiebergado/thinkbox/internal/platform/hash"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/player"
)

var jwtCfg = &config.JWT{
	TTL:        timex.Duration{Duration: 15 * time.Minute},
	RefreshTTL: timex.Duration{Duration: 24 * time.Hour},
}

// fakeSigner encodes the audience into the token so Verify can hand it back.
func fakeSigner() *jwt.StubSigner {
	return &jwt.StubSigner{
		SignFunc: func(subject string, audience []string, _ time.Duration) (string, error) {
			return subject + ":" + audience[0], nil
		},
		VerifyFunc: func(token string) (*jwt.Claims, error) {
			switch token {
			case "1:refresh":
				return &jwt.Claims{UserID: "1", Audience: []string{auth.AudienceRefresh}}, nil
			case "1:access":
				return &jwt.Claims{UserID: "1", Audience: []string{auth.AudienceAccess}}, nil
			case "9:refresh":
				return &jwt.Claims{UserID: "9", Audience: []string{auth.AudienceRefresh}}, nil
			default:
				return nil, errors.New("bad token")
			}
		},
	}
}

func plainHasher() *hash.StubHasher {
	return &hash.StubHasher{
		HashFunc: func(plain string) (string, error) {
			return "hashed:" + plain, nil
		},
		VerifyFunc: func(plain, hashed string) (bool, error) {
			return "hashed:"+plain == hashed, nil
		},
	}
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	errDB := errors.New("db error")

	tests := []struct {
		name    string
		players *player.StubService
		wantErr error
	}{
		{
			name: "new player",
			players: &player.StubService{
				FindByEmailFunc: func(_ context.Context, _ string) (*player.Player, error) {
					return nil, player.ErrNotFound
				},
				CreateFunc: func(_ context.Context, params player.CreateParams) (*player.Player, error) {
					if params.PasswordHash != "hashed:secret123" {
						return nil, errors.New("password was not hashed")
					}
					return &player.Player{Model: model.Model{ID: "1"}, Email: params.Email}, nil
				},
			},
		},
		{
			name: "email already registered",
			players: &player.StubService{
				FindByEmailFunc: func(_ context.Context, email string) (*player.Player, error) {
					return &player.Player{Email: email}, nil
				},
			},
			wantErr: auth.ErrUserExists,
		},
		{
			name: "concurrent registration hits unique constraint",
			players: &player.StubService{
				FindByEmailFunc: func(_ context.Context, _ string) (*player.Player, error) {
					return nil, player.ErrNotFound
				},
				CreateFunc: func(_ context.Context, _ player.CreateParams) (*player.Player, error) {
					return nil, player.ErrDuplicate
				},
			},
			wantErr: auth.ErrUserExists,
		},
		{
			name: "lookup fails",
			players: &player.StubService{
				FindByEmailFunc: func(_ context.Context, _ string) (*player.Player, error) {
					return nil, errDB
				},
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := auth.NewService(jwtCfg, tt.players, &auth.Providers{Hasher: plainHasher(), Signer: fakeSigner()})
			p, err := svc.Register(t.Context(), auth.RegisterParams{Email: "ana@example.com", Password: "secret123"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Register() = %v, want: %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && p.ID != "1" {
				t.Errorf("p.ID = %q, want: %q", p.ID, "1")
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	players := &player.StubService{
		FindByEmailFunc: func(_ context.Context, email string) (*player.Player, error) {
			if email != "ana@example.com" {
				return nil, player.ErrNotFound
			}
			return &player.Player{Model: model.Model{ID: "1"}, Email: email, PasswordHash: "hashed:secret123"}, nil
		},
	}

	tests := []struct {
		name, email, password string
		want                  *auth.Tokens
		wantErr               error
	}{
		{"correct credentials", "ana@example.com", "secret123", &auth.Tokens{AccessToken: "1:access", RefreshToken: "1:refresh"}, nil},
		{"wrong password", "ana@example.com", "nope", nil, auth.ErrUserNotFound},
		{"unknown email", "bob@example.com", "secret123", nil, auth.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := auth.NewService(jwtCfg, players, &auth.Providers{Hasher: plainHasher(), Signer: fakeSigner()})
			got, err := svc.Login(t.Context(), auth.LoginParams{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Login() = %v, want: %v", err, tt.wantErr)
			}

			if tt.want != nil && *got != *tt.want {
				t.Errorf("svc.Login() = %+v, want: %+v", got, tt.want)
			}
		})
	}
}

func TestService_Refresh(t *testing.T) {
	t.Parallel()

	players := &player.StubService{
		FindFunc: func(_ context.Context, id string) (*player.Player, error) {
			if id != "1" {
				return nil, player.ErrNotFound
			}
			return &player.Player{Model: model.Model{ID: id}}, nil
		},
	}

	tests := []struct {
		name, token string
		wantErr     error
	}{
		{"refresh token", "1:refresh", nil},
		{"access token is rejected", "1:access", auth.ErrInvalidToken},
		{"deleted player", "9:refresh", auth.ErrInvalidToken},
		{"garbage", "garbage", auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := auth.NewService(jwtCfg, players, &auth.Providers{Hasher: plainHasher(), Signer: fakeSigner()})
			got, err := svc.Refresh(t.Context(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("svc.Refresh() = %v, want: %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && got.AccessToken != "1:access" {
				t.Errorf("got.AccessToken = %q, want: %q", got.AccessToken, "1:access")
			}
		})
	}
}
