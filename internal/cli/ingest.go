package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw/recipekit/internal/ingest"
	"github.com/openclaw/recipekit/pkg/config"
	"github.com/openclaw/recipekit/pkg/logger"
)

func ingestCmd() *cobra.Command {
	var (
		schemaPath string
		inputPath  string
		outputDir  string
		dryRun     bool
	)

	var cfg ingest.Config
	config.MustLoad(&cfg)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Sanitize a recipe payload into draft documents",
		Long: "Validates the payload against the repository schema, sanitizes every " +
			"free-text field, and writes one Markdown draft per record. Any " +
			"structural or normalization error aborts the batch with all " +
			"accumulated messages on stderr.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(
				logger.WithLevel(parseLevel(cfg.LogLevel)),
				logger.WithFormat(logger.Format(cfg.LogFormat)),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithAttr(slog.String("component", "ingest")),
			)

			result, err := ingest.Run(cmd.Context(), ingest.Options{
				SchemaPath: schemaPath,
				InputPath:  inputPath,
				OutputDir:  outputDir,
				DryRun:     dryRun,
				Logger:     log,
			})
			if err != nil {
				reportIngestError(cmd, err)
				return err
			}

			for _, slug := range result.Planned {
				fmt.Fprintf(cmd.OutOrStdout(), "DRY RUN: would write %s.md\n", slug)
			}
			if len(result.Written) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote drafts:")
				for _, path := range result.Written {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", cfg.SchemaPath, "path to the schema document")
	cmd.Flags().StringVar(&inputPath, "input", cfg.InputPath, "path to the payload document")
	cmd.Flags().StringVar(&outputDir, "output", cfg.OutputDir, "destination directory for drafts")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and normalize but skip writes")

	return cmd
}

// reportIngestError prints every accumulated message before the process
// exits, so the error stream alone gives a complete picture of the batch.
func reportIngestError(cmd *cobra.Command, err error) {
	var vErr *ingest.ValidationFailedError
	if errors.As(err, &vErr) {
		for _, msg := range vErr.Messages {
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", msg)
		}
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", err)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
