package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	loadEnvOnce sync.Once

	// cache holds one parsed value per configuration type.
	cache sync.Map // reflect.Type -> any
)

// Load populates cfg from environment variables using `env` struct tags.
// The surrounding .env file (if any) is loaded once per process before the
// first parse. Each configuration type is parsed only once; subsequent calls
// for the same type return the cached value.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env is not an error; the environment may be set directly.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
