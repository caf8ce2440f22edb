package config

import (
	"fmt"
	"time"
)

// ServerApp holds authentication and integrity settings of the server.
type ServerApp struct {
	HashKey      string
	TokenSignKey string
	TokenIssuer  string
}

// ServerHTTP holds the listen address and request timeout.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerDB holds the PostgreSQL connection string.
type ServerDB struct {
	DSN string
}

// ServerStorage groups server storage settings.
type ServerStorage struct {
	DB ServerDB
}

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			HashKey:      cfg.App.HashKey,
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
