package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

func TestNewHandlers(t *testing.T) {
	valid := config.ServerConfig{
		App:    config.ServerApp{TokenSignKey: "secret", TokenIssuer: "ledger"},
		Server: config.ServerHTTP{HTTPAddress: ":8080"},
	}

	t.Run("http handler created", func(t *testing.T) {
		// services are only stored, so nil is safe at construction time
		h, err := NewHandlers(nil, valid, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, h.HTTP)
	})

	t.Run("no address", func(t *testing.T) {
		cfg := valid
		cfg.Server.HTTPAddress = ""

		h, err := NewHandlers(nil, cfg, logger.Nop())

		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, h)
	})

	t.Run("no token settings", func(t *testing.T) {
		cfg := valid
		cfg.App.TokenIssuer = ""

		_, err := NewHandlers(nil, cfg, logger.Nop())

		assert.ErrorIs(t, err, errTokenSettingsMissing)
	})
}
