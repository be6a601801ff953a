package stubapi

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
)

// TokenIssuer is the "iss" claim of access tokens issued by the stub.
const TokenIssuer = "fitiplus-stub"

type Handler struct {
	cfg   config.StubAPI
	users *directory

	logger *logger.Logger
}

func NewHandler(cfg config.StubAPI, logger *logger.Logger) *Handler {
	return newHandler(cfg, logger, bcrypt.DefaultCost)
}

func newHandler(cfg config.StubAPI, logger *logger.Logger, hashCost int) *Handler {
	logger.Info().Str("version", cfg.Version).Msg("stub api handler created")
	return &Handler{
		cfg:    cfg,
		users:  newDirectory(hashCost),
		logger: logger,
	}
}
