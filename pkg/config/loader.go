package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu     sync.Mutex
	loaded = make(map[string]any)
)

// Load fills cfg from environment variables declared as struct tags:
//
//	type Config struct {
//		SubmitText string `env:"CHECKOUT_SUBMIT_TEXT" envDefault:"Submit"`
//	}
//
// A .env file in the working directory is folded into the environment once
// per process before the first parse. Results are cached by configuration
// type: a second Load of the same type returns a copy of the first result,
// even if the environment changed in between.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; deployments use the real environment.
		_ = godotenv.Load()
	})

	key := fmt.Sprintf("%T", *cfg)

	mu.Lock()
	defer mu.Unlock()

	if hit, ok := loaded[key]; ok {
		*cfg = hit.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Cache a copy so later callers cannot mutate what we hand out.
	loaded[key] = *cfg
	return nil
}

// MustLoad is Load for configuration the process cannot start without; it
// panics instead of returning an error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
