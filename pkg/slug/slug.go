package slug

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnsafeSlug is returned when neither the provided slug nor the title
// yields a non-empty valid identifier.
var ErrUnsafeSlug = errors.New("could not derive a valid slug")

var (
	validSlugRegex  = regexp.MustCompile(`^[a-z0-9-]+$`)
	invalidRunRegex = regexp.MustCompile(`[^a-z0-9-]+`)
)

// IsValid reports whether s is a non-empty token consisting solely of
// lowercase letters, digits and hyphens.
func IsValid(s string) bool {
	return validSlugRegex.MatchString(s)
}

// Make derives a slug from free text: the input is lowercased, every run of
// characters outside [a-z0-9-] is replaced with a single hyphen, and
// leading/trailing hyphens are trimmed. Hyphens already present in the
// input are kept as-is, so "pre-made" survives unchanged. The result may
// be empty when the input contains no usable characters.
func Make(s string) string {
	s = invalidRunRegex.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// Derive resolves the identifier for a record: the provided slug wins when
// it is already valid; otherwise one is derived from the title via Make.
// Returns ErrUnsafeSlug when both paths come up empty.
func Derive(provided, title string) (string, error) {
	if IsValid(provided) {
		return provided, nil
	}
	derived := Make(title)
	if derived == "" {
		return "", ErrUnsafeSlug
	}
	return derived, nil
}
