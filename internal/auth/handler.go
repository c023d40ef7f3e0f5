package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/pkg/message"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/player"
)

const maskChar = "*"

type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*player.Player, error)
	Login(ctx context.Context, params LoginParams) (*Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (*Tokens, error)
}

var _ AuthService = (*Service)(nil)

type Handler struct {
	svc AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{svc: svc}
}

type RegisterRequest struct {
	Email           string `json:"email,omitempty" validate:"required,email"`
	Password        string `json:"password,omitempty" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (r RegisterRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RegisterRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	p, err := h.svc.Register(r.Context(), RegisterParams{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondConflict(w, err, MsgUserExists, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRegisterSuccess
	web.RespondCreated(w, &msg, &RegisterResponse{
		ID:        p.ID,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newTokenResponse(t *Tokens) *TokenResponse {
	return &TokenResponse{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    "Bearer",
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	tokens, err := h.svc.Login(r.Context(), LoginParams(req))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgLoggedIn
	web.RespondOK(w, &msg, newTokenResponse(tokens))
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty" validate:"required"`
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[RefreshRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	tokens, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			web.RespondUnauthorized(w, err, message.InvalidUser, nil)
			return
		}

		web.RespondInternalServerError(w, err)
		return
	}

	msg := MsgRefreshed
	web.RespondOK(w, &msg, newTokenResponse(tokens))
}
