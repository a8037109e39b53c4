package validator

import (
	"fmt"
	"regexp"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsDate reports whether a value is an exact YYYY-MM-DD string.
func IsDate(value string) bool {
	return dateRegex.MatchString(value)
}

// HasField validates that a named field was present on a record.
func HasField(field, name string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("missing required field: %s", name),
		},
	}
}

// MatchesSlug validates that a value is a non-empty lowercase
// [a-z0-9-]+ token.
func MatchesSlug(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return slugRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "slug is invalid",
		},
	}
}

// MatchesDate validates that a value is an exact YYYY-MM-DD string.
// The match is purely structural; calendar plausibility is not checked.
func MatchesDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return dateRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "date must be YYYY-MM-DD",
		},
	}
}
