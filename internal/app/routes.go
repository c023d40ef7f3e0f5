package app

import (
	"net/http"

	"github.com/ferdiebergado/thinkbox/internal/auth"
	"github.com/ferdiebergado/thinkbox/internal/crossword"
	"github.com/ferdiebergado/thinkbox/internal/metrics"
	"github.com/ferdiebergado/thinkbox/internal/middleware"
	"github.com/ferdiebergado/thinkbox/internal/minesweeper"
	"github.com/ferdiebergado/thinkbox/internal/pagerank"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/platform/router"
	"github.com/ferdiebergado/thinkbox/internal/platform/validation"
	"github.com/ferdiebergado/thinkbox/internal/player"
	"github.com/ferdiebergado/thinkbox/internal/tictactoe"
)

func (a *App) setupRoutes() {
	r := a.provider.Router
	v := a.provider.Validator
	maxBody := a.cfg.Server.MaxBodyBytes

	playerModule := player.NewModule(a.provider.DB)
	mountPlayerRoutes(r, playerModule.Handler(), a.provider.Signer)

	authProviders := &auth.Providers{
		Hasher: a.provider.Hasher,
		Signer: a.provider.Signer,
	}
	authModule := auth.NewModule(a.cfg.JWT, playerModule.Service(), authProviders)
	mountAuthRoutes(r, authModule.Handler(), v, maxBody)

	gameRepo := minesweeper.NewRepository(a.provider.DB)
	gameService := minesweeper.NewService(gameRepo, a.provider.TxMgr)
	mountMinesweeperRoutes(r, minesweeper.NewHandler(gameService), v, a.provider.Signer, maxBody)

	// The solver endpoints share one limiter per client.
	limit := middleware.RateLimit(a.cfg.RateLimit)
	timeout := middleware.SolverTimeout(a.cfg.Solver.Timeout.Duration)

	mountTicTacToeRoutes(r, tictactoe.NewHandler(), v, maxBody, limit)
	mountPageRankRoutes(r, pagerank.NewHandler(a.cfg.Solver.PageRank), v, maxBody, limit, timeout)
	mountCrosswordRoutes(r, crossword.NewHandler(), v, maxBody, limit, timeout)

	r.Get("/health", healthHandler(a.provider.DB))
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	// Preflight requests are answered by the CORS middleware.
	r.Options("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func mountPlayerRoutes(r router.Router, handler *player.Handler, signer jwt.Signer) {
	r.Get("/players", handler.List, auth.RequireToken(signer))
}

func mountAuthRoutes(r router.Router, handler *auth.Handler, v validation.Validator, maxBody int64) {
	r.Group("/auth", func(gr router.Router) {
		gr.Post("/register", handler.Register,
			middleware.DecodePayload[auth.RegisterRequest](maxBody),
			middleware.ValidateInput[auth.RegisterRequest](v))
		gr.Post("/login", handler.Login,
			middleware.DecodePayload[auth.LoginRequest](maxBody),
			middleware.ValidateInput[auth.LoginRequest](v))
		gr.Post("/refresh", handler.Refresh,
			middleware.DecodePayload[auth.RefreshRequest](maxBody),
			middleware.ValidateInput[auth.RefreshRequest](v))
	})
}

func mountMinesweeperRoutes(r router.Router, handler *minesweeper.Handler, v validation.Validator, signer jwt.Signer, maxBody int64) {
	r.Group("/minesweeper", func(gr router.Router) {
		gr.Post("/games", handler.Create,
			middleware.DecodePayload[minesweeper.CreateRequest](maxBody),
			middleware.ValidateInput[minesweeper.CreateRequest](v))
		gr.Get("/games", handler.List)
		gr.Get("/games/{id}", handler.Find)
		gr.Post("/games/{id}/reveal", handler.Reveal,
			middleware.DecodePayload[minesweeper.MoveRequest](maxBody),
			middleware.ValidateInput[minesweeper.MoveRequest](v))
		gr.Post("/games/{id}/flag", handler.Flag,
			middleware.DecodePayload[minesweeper.MoveRequest](maxBody),
			middleware.ValidateInput[minesweeper.MoveRequest](v))
		gr.Post("/games/{id}/ai", handler.AI)
	}, auth.RequireToken(signer))
}

func mountTicTacToeRoutes(r router.Router, handler *tictactoe.Handler, v validation.Validator, maxBody int64, limit func(http.Handler) http.Handler) {
	r.Group("/tictactoe", func(gr router.Router) {
		gr.Post("/move", handler.Move,
			middleware.DecodePayload[tictactoe.MoveRequest](maxBody),
			middleware.ValidateInput[tictactoe.MoveRequest](v))
		gr.Post("/play", handler.Play,
			middleware.DecodePayload[tictactoe.PlayRequest](maxBody),
			middleware.ValidateInput[tictactoe.PlayRequest](v))
	}, limit)
}

func mountPageRankRoutes(r router.Router, handler *pagerank.Handler, v validation.Validator, maxBody int64, mws ...func(http.Handler) http.Handler) {
	mws = append(mws,
		middleware.DecodePayload[pagerank.Request](maxBody),
		middleware.ValidateInput[pagerank.Request](v))
	r.Post("/pagerank", handler.Rank, mws...)
}

func mountCrosswordRoutes(r router.Router, handler *crossword.Handler, v validation.Validator, maxBody int64, mws ...func(http.Handler) http.Handler) {
	mws = append(mws,
		middleware.DecodePayload[crossword.Request](maxBody),
		middleware.ValidateInput[crossword.Request](v))
	r.Post("/crossword", handler.Generate, mws...)
}
