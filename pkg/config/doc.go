// Package config loads recipekit configuration from environment variables
// into typed structs.
//
// Each unique struct type is parsed once per process and cached, so the CLI
// commands can independently request the configuration they need without
// re-reading the environment. A .env file in the working directory is
// honoured when present.
//
// # Usage
//
//	type IngestConfig struct {
//	    SchemaPath string `env:"RECIPEKIT_SCHEMA" envDefault:"data/schema.json"`
//	    InputPath  string `env:"RECIPEKIT_INPUT" envDefault:"data/openclaw_updates.json"`
//	    OutputDir  string `env:"RECIPEKIT_OUTPUT" envDefault:"recipes"`
//	}
//
//	var cfg IngestConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics instead of returning an error, for configuration without
// which the command cannot start.
package config
