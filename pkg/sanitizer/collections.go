package sanitizer

import "strings"

// FilterEmpty removes whitespace-only entries so blank list items never
// reach the emitted document.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0)
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Map applies a transformation to every element, returning a new slice.
func Map[T any](slice []T, fn func(T) T) []T {
	result := make([]T, len(slice))
	for i, item := range slice {
		result[i] = fn(item)
	}
	return result
}

// Deduplicate preserves first occurrence order to maintain the submitter's
// intended ordering.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0)

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}
