// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls, so independently constructed components observe identical
// configuration.
//
// A .env file in the working directory is loaded automatically on first use;
// parsing is delegated to the caarlos0/env library.
//
//	type ClientConfig struct {
//		BaseURL string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:5000/api/v1"`
//		Timeout time.Duration `env:"STOREFRONT_API_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrLoadFailed is returned when environment parsing fails for a config type.
var ErrLoadFailed = errors.New("failed to load config from environment")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> config value
)

// Load populates cfg from environment variables, returning a cached value if
// the same type has been loaded before. cfg must be a non-nil struct pointer.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil target", ErrLoadFailed)
	}

	// Missing .env files are expected outside local development.
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeOf(*cfg)
	if v, ok := cache.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrLoadFailed, err)
	}

	// Another goroutine may have won the race; keep the first stored value
	// so all callers observe the same config.
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
