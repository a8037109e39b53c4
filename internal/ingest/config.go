package ingest

// Config carries the ingest command's environment-driven defaults. CLI
// flags take precedence over these values.
type Config struct {
	SchemaPath string `env:"RECIPEKIT_SCHEMA" envDefault:"data/schema.json"`
	InputPath  string `env:"RECIPEKIT_INPUT" envDefault:"data/openclaw_updates.json"`
	OutputDir  string `env:"RECIPEKIT_OUTPUT" envDefault:"recipes"`
	LogLevel   string `env:"RECIPEKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"RECIPEKIT_LOG_FORMAT" envDefault:"text"`
}
