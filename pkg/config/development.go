package config

import (
	"os"
	"strconv"
)

func getenv(key string) string {
	return os.Getenv(key)
}

func loadDevelopmentConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseDebug = true
	cfg.DatabaseFilePath = "./tmp/catalogue.sqlite"
	cfg.ServerHost = "127.0.0.1"
	cfg.SessionSecret = "development-session-secret"

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabaseFilePath = path
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = secret
	}

	// Only honored here. Production and test always enforce permissions.
	cfg.BypassPermissions = os.Getenv("DEV_BYPASS_PERMISSIONS") == "true"
}
