// Package logger builds configured slog.Logger instances for the recipekit
// CLI commands.
//
// Defaults are CLI-friendly: text format on stderr at info level, so
// operator-visible progress never mixes with the command's stdout result
// output. JSON format is available for runs whose logs are shipped to an
// aggregation system.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("component", "ingest")),
//	)
//
// The Error and Errors helpers produce consistent error attributes across
// the codebase.
package logger
