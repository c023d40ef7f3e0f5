package app

import (
	"database/sql"

	"github.com/ferdiebergado/thinkbox/internal/config"
	"github.com/ferdiebergado/thinkbox/internal/platform/db"
	"github.com/ferdiebergado/thinkbox/internal/platform/hash"
	"github.com/ferdiebergado/thinkbox/internal/platform/jwt"
	"github.com/ferdiebergado/thinkbox/internal/platform/router"
	"github.com/ferdiebergado/thinkbox/internal/platform/validation"
)

type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
	TxMgr     db.TxManager
}

// NewProvider builds the default implementations. securityKey signs tokens
// and peppers password hashes.
func NewProvider(cfg *config.Config, securityKey string, dbConn *sql.DB) *Provider {
	return &Provider{
		DB:        dbConn,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Router:    router.NewGoexpressRouter(),
		TxMgr:     db.NewSQLTxManager(dbConn),
	}
}
