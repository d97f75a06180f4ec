// Package config loads typed configuration structs from environment
// variables, with an optional .env file for local development.
//
//	type ServerConfig struct {
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config target must be a non-nil pointer")

	dotenvOnce sync.Once
)

// Load parses environment variables into the provided struct based on its
// env tags. The default .env file is loaded once per process; a missing file
// is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
