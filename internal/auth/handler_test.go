package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/auth"
	"github.com/ferdiebergado/thinkbox/internal/model"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/player"
	"github.com/google/go-cmp/cmp"
)

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)
	const testEmail = "test@example.com"
	req := auth.RegisterRequest{Email: testEmail, Password: "password1", PasswordConfirm: "password1"}

	tests := []struct {
		name     string
		register func(context.Context, auth.RegisterParams) (*player.Player, error)
		code     int
		want     *auth.RegisterResponse
	}{
		{
			name: "successful registration",
			register: func(_ context.Context, params auth.RegisterParams) (*player.Player, error) {
				return &player.Player{
					Model: model.Model{ID: "1", CreatedAt: now, UpdatedAt: now},
					Email: params.Email,
				}, nil
			},
			code: http.StatusCreated,
			want: &auth.RegisterResponse{ID: "1", Email: testEmail, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "user already exists",
			register: func(_ context.Context, _ auth.RegisterParams) (*player.Player, error) {
				return nil, auth.ErrUserExists
			},
			code: http.StatusConflict,
		},
		{
			name: "service fails",
			register: func(_ context.Context, _ auth.RegisterParams) (*player.Player, error) {
				return nil, errors.New("db error")
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{RegisterFunc: tt.register})

			ctx := web.NewContextWithParams(context.Background(), req)
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/register", http.NoBody)
			rec := httptest.NewRecorder()
			h.Register(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.code)
			}

			web.AssertContentType(t, res)

			if tt.want != nil {
				body := web.DecodeJSONResponse[web.OKResponse[*auth.RegisterResponse]](t, res)
				if diff := cmp.Diff(tt.want, body.Data); diff != "" {
					t.Errorf("body.Data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		login func(context.Context, auth.LoginParams) (*auth.Tokens, error)
		code  int
		want  *auth.TokenResponse
	}{
		{
			name: "valid credentials",
			login: func(_ context.Context, _ auth.LoginParams) (*auth.Tokens, error) {
				return &auth.Tokens{AccessToken: "access", RefreshToken: "refresh"}, nil
			},
			code: http.StatusOK,
			want: &auth.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"},
		},
		{
			name: "invalid credentials",
			login: func(_ context.Context, _ auth.LoginParams) (*auth.Tokens, error) {
				return nil, auth.ErrUserNotFound
			},
			code: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(&auth.StubService{LoginFunc: tt.login})

			ctx := web.NewContextWithParams(context.Background(), auth.LoginRequest{Email: "a@example.com", Password: "x"})
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/login", http.NoBody)
			rec := httptest.NewRecorder()
			h.Login(rec, r)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.code {
				t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, tt.code)
			}

			if tt.want != nil {
				body := web.DecodeJSONResponse[web.OKResponse[*auth.TokenResponse]](t, res)
				if diff := cmp.Diff(tt.want, body.Data); diff != "" {
					t.Errorf("body.Data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	t.Parallel()

	svc := &auth.StubService{
		RefreshFunc: func(_ context.Context, token string) (*auth.Tokens, error) {
			if token != "good" {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Tokens{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}

	tests := []struct {
		name, token string
		code        int
	}{
		{"valid refresh token", "good", http.StatusOK},
		{"invalid refresh token", "bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := auth.NewHandler(svc)
			ctx := web.NewContextWithParams(context.Background(), auth.RefreshRequest{RefreshToken: tt.token})
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/auth/refresh", http.NoBody)
			rec := httptest.NewRecorder()
			h.Refresh(rec, r)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}
		})
	}
}
