package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openclaw/recipekit/pkg/sanitizer"
)

func TestFilterEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "drops blank entries",
			input:    []string{"a", "", "  ", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "keeps everything when nothing is blank",
			input:    []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "empty input",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.FilterEmpty(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMap(t *testing.T) {
	double := func(s string) string { return s + s }

	result := sanitizer.Map([]string{"a", "b"}, double)
	assert.Equal(t, []string{"aa", "bb"}, result)

	assert.Equal(t, []string{}, sanitizer.Map([]string{}, double))
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "preserves first occurrence order",
			input:    []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "no duplicates",
			input:    []string{"x", "y"},
			expected: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizer.Deduplicate(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	clean := sanitizer.Compose(
		sanitizer.StripHTMLTags,
		sanitizer.NormalizeWhitespace,
	)

	assert.Equal(t, "hello world", clean("  hello <b>world</b>  "))
}
