// Package config provides type-safe environment variable loading with
// per-type caching. A .env file is loaded automatically on first use; struct
// fields are parsed with the caarlos0/env tag conventions:
//
//	type ServerConfig struct {
//		Addr         string `env:"ENLIGHTEN_ADDR" envDefault:":8080"`
//		Subdirectory string `env:"ENLIGHTEN_SUBDIRECTORY" envDefault:""`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per process; later calls for the
// same type return the cached value.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil pointer.
var ErrNilConfig = errors.New("config: nil config pointer")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed config value
)

// Load populates cfg from the environment, caching the result per type.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; the process environment still applies.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
