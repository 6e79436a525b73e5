package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by RCRT_ENV (or .env by default).
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("RCRT_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing file is fine; env-only deployments set everything directly.
	_ = godotenv.Load(envFile)

	return nil
}

// Port returns the webhook receiver listen port. Defaults to 8081.
func Port() int {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		return 8081
	}
	return port
}

// ListenAddr returns the receiver bind address for the configured port.
func ListenAddr() string {
	return fmt.Sprintf(":%d", Port())
}

// BaseURL returns the rcrt server URL the client talks to.
// Defaults to a local server.
func BaseURL() string {
	u := os.Getenv("RCRT_BASE_URL")
	if u == "" {
		return "http://localhost:8080"
	}
	return u
}

// Token returns the bearer token for the rcrt server, empty when auth is
// disabled.
func Token() string {
	return os.Getenv("RCRT_TOKEN")
}

// Timeout returns the per-request client timeout.
// Defaults to 30 seconds if not set.
func Timeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("RCRT_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(secs) * time.Second
}
