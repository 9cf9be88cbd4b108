package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings used by the server auth layer.
type ServerApp struct {
	// TokenSignKey signs and verifies JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim for issued tokens.
	TokenIssuer string
	// TokenDuration is the token lifetime.
	TokenDuration time.Duration
	// Version is the running application version.
	Version string
}

// ServerStorage contains the PostgreSQL connection settings.
type ServerStorage struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// ServerHTTP contains inbound HTTP transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// RequestTimeout bounds the lifetime of a single inbound request.
	RequestTimeout time.Duration
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  ServerHTTP
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Storage: ServerStorage{
			DSN: cfg.Storage.DB.DSN,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return serverCfg, serverCfg.validate()
}
