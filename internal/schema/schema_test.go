package schema_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/recipekit/internal/schema"
)

const schemaJSON = `{
  "properties": {
    "recipes": {
      "items": {
        "required": ["title", "ingredients", "steps"]
      }
    }
  }
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestLoad(t *testing.T) {
	t.Run("reads required list", func(t *testing.T) {
		s, err := schema.Load(writeSchema(t, schemaJSON))
		require.NoError(t, err)
		assert.Equal(t, []string{"title", "ingredients", "steps"}, s.Required)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := schema.Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := schema.Load(writeSchema(t, "{"))
		assert.Error(t, err)
	})

	t.Run("missing required list", func(t *testing.T) {
		_, err := schema.Load(writeSchema(t, `{"properties": {}}`))
		assert.ErrorIs(t, err, schema.ErrMalformedSchema)
	})
}

func TestValidate(t *testing.T) {
	s := &schema.Schema{Required: []string{"title", "ingredients", "steps"}}

	tests := []struct {
		name     string
		payload  any
		expected []string
	}{
		{
			name:     "payload not an object",
			payload:  decode(t, `[1, 2]`),
			expected: []string{"payload must be an object"},
		},
		{
			name:     "missing recipes key",
			payload:  decode(t, `{"other": []}`),
			expected: []string{"payload.recipes must be a non-empty list"},
		},
		{
			name:     "recipes not a list",
			payload:  decode(t, `{"recipes": {}}`),
			expected: []string{"payload.recipes must be a non-empty list"},
		},
		{
			name:     "empty recipes list",
			payload:  decode(t, `{"recipes": []}`),
			expected: []string{"payload.recipes must be a non-empty list"},
		},
		{
			name: "valid single record",
			payload: decode(t, `{"recipes": [
				{"title": "Soup", "ingredients": ["x"], "steps": ["y"]}
			]}`),
			expected: []string{},
		},
		{
			name:    "record not an object",
			payload: decode(t, `{"recipes": ["nope"]}`),
			expected: []string{
				"recipes[0] must be an object",
			},
		},
		{
			name: "missing fields reported per field",
			payload: decode(t, `{"recipes": [
				{"title": "Soup"}
			]}`),
			expected: []string{
				"recipes[0] missing required field: ingredients",
				"recipes[0] missing required field: steps",
			},
		},
		{
			name: "invalid slug and date when present",
			payload: decode(t, `{"recipes": [
				{"title": "Soup", "ingredients": ["x"], "steps": ["y"],
				 "slug": "Not A Slug", "date": "13/02/2024"}
			]}`),
			expected: []string{
				"recipes[0] slug is invalid",
				"recipes[0] date must be YYYY-MM-DD",
			},
		},
		{
			name: "non-string slug is invalid",
			payload: decode(t, `{"recipes": [
				{"title": "Soup", "ingredients": ["x"], "steps": ["y"], "slug": 42}
			]}`),
			expected: []string{
				"recipes[0] slug is invalid",
			},
		},
		{
			name: "errors collected across records with indices",
			payload: decode(t, `{"recipes": [
				{"title": "Ok", "ingredients": ["x"], "steps": ["y"]},
				"broken",
				{"ingredients": ["x"], "steps": ["y"], "date": "bad"}
			]}`),
			expected: []string{
				"recipes[1] must be an object",
				"recipes[2] missing required field: title",
				"recipes[2] date must be YYYY-MM-DD",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.Validate(tt.payload, s))
		})
	}
}
