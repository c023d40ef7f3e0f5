package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/platform/hash"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/player"
)

var (
	ErrUserExists   = errors.New("auth service: user already exists")
	ErrUserNotFound = errors.New("auth service: invalid credentials")
	ErrInvalidToken = errors.New("auth service: invalid token")
)

type RegisterParams struct {
	Email    string
	Password string
}

func (p RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", p.Email),
		slog.String("password", maskChar),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", p.Email),
		slog.String("password", maskChar),
	)
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Service struct {
	cfg     *config.JWT
	players player.Service
	hasher  hash.Hasher
	signer  jwt.Signer
}

func NewService(cfg *config.JWT, players player.Service, providers *Providers) *Service {
	return &Service{
		cfg:     cfg,
		players: players,
		hasher:  providers.Hasher,
		signer:  providers.Signer,
	}
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*player.Player, error) {
	existing, err := s.players.FindByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, player.ErrNotFound) {
		return nil, fmt.Errorf("find player with email %s: %w", params.Email, err)
	}

	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p, err := s.players.Create(ctx, player.CreateParams{Email: params.Email, PasswordHash: hashed})
	if err != nil {
		if errors.Is(err, player.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create player %s: %w", params.Email, err)
	}

	slog.Info("Player registered.", "player_id", p.ID)
	return p, nil
}

// Login checks the credentials and issues a fresh token pair.
// Unknown emails and wrong passwords both return ErrUserNotFound.
func (s *Service) Login(ctx context.Context, params LoginParams) (*Tokens, error) {
	p, err := s.players.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find player with email %s: %w", params.Email, err)
	}

	ok, err := s.hasher.Verify(params.Password, p.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password of player %s: %w", p.ID, err)
	}

	if !ok {
		return nil, ErrUserNotFound
	}

	return s.issue(p.ID)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	claims, err := s.signer.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !slices.Contains(claims.Audience, AudienceRefresh) {
		return nil, fmt.Errorf("%w: not a refresh token", ErrInvalidToken)
	}

	if _, err := s.players.Find(ctx, claims.UserID); err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown player %s", ErrInvalidToken, claims.UserID)
		}
		return nil, fmt.Errorf("find player %s: %w", claims.UserID, err)
	}

	return s.issue(claims.UserID)
}

func (s *Service) issue(playerID string) (*Tokens, error) {
	access, err := s.signer.Sign(playerID, []string{AudienceAccess}, s.cfg.TTL.Duration)
	if err != nil {
		return nil, fmt.Errorf("sign access token for player %s: %w", playerID, err)
	}

	refresh, err := s.signer.Sign(playerID, []string{AudienceRefresh}, s.cfg.RefreshTTL.Duration)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token for player %s: %w", playerID, err)
	}

	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
