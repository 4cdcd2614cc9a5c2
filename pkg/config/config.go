package config

import (
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseBusyTimeout       time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	Environment               string
	ServerHost                string
	ServerPort                int
	SessionSecret             string

	// BypassPermissions grants every capability to every caller. It can only
	// be turned on in the development environment.
	BypassPermissions bool
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	cfg := &Config{
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseBusyTimeout:       5 * time.Second,
		ServerPort:                4180,
	}

	switch env := getenv(environmentENV); env {
	case "development", "":
		cfg.Environment = "development"
		loadDevelopmentConfig(cfg)
	case "test":
		cfg.Environment = "test"
		loadTestConfig(cfg)
	case "production":
		cfg.Environment = "production"
		if err := loadProductionConfig(cfg); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("unknown environment: %s", env)
	}

	return cfg, nil
}
