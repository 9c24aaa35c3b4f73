package config

import (
	"fmt"
	"time"
)

// MockAPIAuth holds token settings of the stub backend.
type MockAPIAuth struct {
	TokenSignKey    string
	TokenIssuer     string
	TokenDuration   time.Duration
	RefreshDuration time.Duration
}

// MockAPIServer holds listener settings of the stub backend.
type MockAPIServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// MockAPIConfig is the stub backend configuration assembled from
// [StructuredConfig].
type MockAPIConfig struct {
	Auth   MockAPIAuth
	Server MockAPIServer
}

// GetMockAPIConfig builds and validates the stub backend config view.
func GetMockAPIConfig(args []string) (*MockAPIConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	apiCfg := &MockAPIConfig{
		Auth: MockAPIAuth{
			TokenSignKey:    cfg.Auth.TokenSignKey,
			TokenIssuer:     cfg.Auth.TokenIssuer,
			TokenDuration:   cfg.Auth.TokenDuration,
			RefreshDuration: cfg.Auth.RefreshDuration,
		},
		Server: MockAPIServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return apiCfg, apiCfg.validate()
}
