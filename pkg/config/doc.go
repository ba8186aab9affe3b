// Package config loads typed configuration structs from environment
// variables, with defaults declared as struct tags and optional overrides
// from a .env file.
//
// Parsing is backed by github.com/caarlos0/env and the .env file handling by
// github.com/joho/godotenv. Each configuration type is parsed once per
// process and cached, so spreading Load calls across packages does not
// re-read the environment.
//
// # Usage
//
//	type Config struct {
//		SubmitText   string `env:"CHECKOUT_SUBMIT_TEXT" envDefault:"Submit"`
//		TimeLocation string `env:"CHECKOUT_TIME_LOCATION" envDefault:"UTC"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Load wraps parse failures in ErrParsingConfig and reports a nil
// destination as ErrNilPointer. MustLoad panics instead of returning, for
// configuration the process cannot run without.
package config
