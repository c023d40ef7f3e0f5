package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/thinkbox/internal/app"
	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/middleware"
	timex "github.com/ferdiebergado/thinkbox/internal/pkg/time"
	"github.com/ferdiebergado/thinkbox/internal/pkg/web"
	"github.com/ferdiebergado/thinkbox/internal/platform/db"
	"github.com/ferdiebergado/thinkbox/internal/platform/hash"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/platform/router"
	"github.com/ferdiebergado/thinkbox/internal/platform/validation"
)

const origin = "http://localhost:3000"

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	minute := timex.Duration{Duration: time.Minute}
	cfg := &config.Config{
		App:       &config.App{Env: "testing"},
		Server:    &config.Server{URL: origin, MaxBodyBytes: 1 << 20, ShutdownTimeout: minute},
		DB:        &config.DB{},
		JWT:       &config.JWT{Issuer: "thinkbox", TTL: minute, RefreshTTL: minute},
		Argon2:    &config.Argon2{},
		RateLimit: &config.RateLimit{Requests: 1000, Window: minute},
		Solver: &config.Solver{
			Timeout:  timex.Duration{Duration: 5 * time.Second},
			PageRank: &config.PageRank{Damping: 0.85, Samples: 2000, Chains: 2, MaxPages: 10},
		},
	}

	provider := &app.Provider{
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, "testsecret"),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    &hash.StubHasher{},
		Router:    router.NewGoexpressRouter(),
		TxMgr:     &db.StubTxManager{},
	}

	return app.New(cfg, provider, app.Middlewares(cfg))
}

func TestApp_Routes(t *testing.T) {
	t.Parallel()

	handler := newTestApp(t).Handler()

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		wantCode    int
	}{
		{
			name:        "tic-tac-toe move",
			method:      http.MethodPost,
			target:      "/tictactoe/move",
			contentType: web.MimeJSON,
			body:        `{"board":[["X","X",""],["O","O",""],["","",""]]}`,
			wantCode:    http.StatusOK,
		},
		{
			name:        "tic-tac-toe move with invalid board",
			method:      http.MethodPost,
			target:      "/tictactoe/move",
			contentType: web.MimeJSON,
			body:        `{"board":[["X"]]}`,
			wantCode:    http.StatusUnprocessableEntity,
		},
		{
			name:        "non json body",
			method:      http.MethodPost,
			target:      "/tictactoe/move",
			contentType: "text/plain",
			body:        "X",
			wantCode:    http.StatusUnsupportedMediaType,
		},
		{
			name:        "pagerank",
			method:      http.MethodPost,
			target:      "/pagerank",
			contentType: web.MimeJSON,
			body:        `{"pages":{"1.html":["2.html"],"2.html":["1.html"]},"seed":1}`,
			wantCode:    http.StatusOK,
		},
		{
			name:        "pagerank with invalid method",
			method:      http.MethodPost,
			target:      "/pagerank",
			contentType: web.MimeJSON,
			body:        `{"pages":{"1.html":[]},"method":"guess"}`,
			wantCode:    http.StatusUnprocessableEntity,
		},
		{
			name:        "crossword",
			method:      http.MethodPost,
			target:      "/crossword",
			contentType: web.MimeJSON,
			body:        `{"structure":["___","_#_","___"],"words":["cat","cow","tan","win"]}`,
			wantCode:    http.StatusOK,
		},
		{
			name:     "minesweeper requires a token",
			method:   http.MethodGet,
			target:   "/minesweeper/games",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "players require a token",
			method:   http.MethodGet,
			target:   "/players",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:        "login validates input",
			method:      http.MethodPost,
			target:      "/auth/login",
			contentType: web.MimeJSON,
			body:        `{"email":"not-an-email","password":""}`,
			wantCode:    http.StatusUnprocessableEntity,
		},
		{
			name:     "metrics",
			method:   http.MethodGet,
			target:   "/metrics",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("%s %s: rec.Code = %d, want: %d, body: %s", tt.method, tt.target, rec.Code, tt.wantCode, rec.Body)
			}
		})
	}
}

func TestApp_Preflight(t *testing.T) {
	t.Parallel()

	handler := newTestApp(t).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/pagerank", http.NoBody)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusNoContent)
	}

	if got := rec.Header().Get(middleware.HeaderAllowOrigin); got != origin {
		t.Errorf("%s = %q, want: %q", middleware.HeaderAllowOrigin, got, origin)
	}
}
