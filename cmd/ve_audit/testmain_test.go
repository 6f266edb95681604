package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/jonathan/ve-auditor/internal/config"
)

// TestMain loads .env.test and .env when present, and keeps the CLI runs
// quiet unless a log level is configured.
func TestMain(m *testing.M) {
	_ = godotenv.Load(".env.test")
	_ = godotenv.Load()

	if os.Getenv(config.EnvLogLevel) == "" {
		_ = os.Setenv(config.EnvLogLevel, "error")
	}

	os.Exit(m.Run())
}
