package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that supply CLI flag defaults.
const (
	EnvDB      = "FLAPPY_DB"
	EnvConfig  = "FLAPPY_CONFIG"
	EnvSSHAddr = "FLAPPY_SSH_ADDR"
	EnvHostKey = "FLAPPY_HOST_KEY"
	EnvSeed    = "FLAPPY_SEED"
)

// LoadEnv reads KEY=VALUE files into the process environment.
// Missing files are skipped and variables already set are not overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 is GetEnv for integer values. Unparseable values yield fallback.
func GetEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
