package http

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	hashKey      string
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerApp, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		hashKey:      cfg.HashKey,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
