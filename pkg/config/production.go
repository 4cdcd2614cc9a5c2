package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func loadProductionConfig(cfg *Config) error {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.ServerHost = os.Getenv("HOST")
	if cfg.ServerHost == "" {
		cfg.ServerHost = "0.0.0.0"
	}

	cfg.DatabaseFilePath = os.Getenv("DATABASE_PATH")
	if cfg.DatabaseFilePath == "" {
		return errors.New("DATABASE_PATH is required in production")
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}

	cfg.DatabaseDebug = os.Getenv("DATABASE_DEBUG") == "true"

	return nil
}
