package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openclaw/recipekit/internal/schema"
	"github.com/openclaw/recipekit/pkg/logger"
)

// Options configures one pipeline run.
type Options struct {
	SchemaPath string
	InputPath  string
	OutputDir  string

	// DryRun performs validation and normalization exactly as a real run
	// but skips the write step; only resolved slugs are reported.
	DryRun bool

	// Logger receives per-record progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result reports what a pipeline run produced.
type Result struct {
	// Written holds the paths of documents written, in record order.
	Written []string

	// Planned holds the slugs that would have been written in dry-run mode.
	Planned []string
}

// Run executes the full ingest batch: load schema and payload, validate,
// then normalize and emit each record sequentially. Structural errors are
// returned together as a *ValidationFailedError before any normalization;
// the first normalization failure aborts the remaining batch. Records are
// processed in payload order with no parallelism, so a rerun over the same
// input is deterministic.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("run_id", uuid.New().String()))

	contract, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return nil, err
	}

	payload, err := LoadPayload(opts.InputPath)
	if err != nil {
		return nil, err
	}

	if messages := schema.Validate(payload, contract); len(messages) > 0 {
		log.Error("payload rejected", slog.Int("errors", len(messages)))
		return nil, &ValidationFailedError{Messages: messages}
	}

	writer := Writer{Dir: opts.OutputDir}
	result := &Result{}

	for idx, raw := range Records(payload) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		recipe, err := Normalize(raw)
		if err != nil {
			log.Error("record rejected",
				slog.Int("index", idx),
				slog.String("record", raw.Identity()),
				slog.String("kind", FailureKind(err)),
				logger.Error(err),
			)
			return nil, fmt.Errorf("recipes[%d] (%s): %w", idx, raw.Identity(), err)
		}

		if opts.DryRun {
			log.Info("dry run", slog.String("slug", recipe.Slug))
			result.Planned = append(result.Planned, recipe.Slug)
			continue
		}

		path, err := writer.Write(recipe)
		if err != nil {
			return nil, err
		}

		log.Info("wrote draft", slog.String("slug", recipe.Slug), slog.String("path", path))
		result.Written = append(result.Written, path)
	}

	return result, nil
}
