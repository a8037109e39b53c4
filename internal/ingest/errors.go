package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openclaw/recipekit/pkg/slug"
)

// Package-specific errors
var (
	// ErrInvalidDate is returned when an explicitly-provided date fails the
	// YYYY-MM-DD format check. No fallback is attempted for a malformed
	// date; only an absent one is defaulted.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrEmptyAfterSanitization is returned when a record's ingredients or
	// steps contain nothing substantive once markup, links and URLs have
	// been stripped.
	ErrEmptyAfterSanitization = errors.New("ingredients and steps must be non-empty after sanitization")
)

// Failure kinds for normalization errors, used in logs and reports.
const (
	KindMissingSlug            = "missing-slug"
	KindInvalidDate            = "invalid-date"
	KindEmptyAfterSanitization = "empty-after-sanitization"
)

// FailureKind classifies a normalization error; returns "" for errors that
// did not originate in Normalize.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, slug.ErrUnsafeSlug):
		return KindMissingSlug
	case errors.Is(err, ErrInvalidDate):
		return KindInvalidDate
	case errors.Is(err, ErrEmptyAfterSanitization):
		return KindEmptyAfterSanitization
	default:
		return ""
	}
}

// ValidationFailedError carries the accumulated structural errors from
// schema validation. The batch never reaches normalization when it is
// returned.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Messages, "; "))
}
