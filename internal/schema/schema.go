// Package schema loads the repository's structural contract and checks
// decoded payloads against it before any sanitization is attempted.
//
// Validation is fail-fast at the payload level (a malformed container makes
// per-record checks meaningless) and fail-soft at the record level: every
// defect across the batch is surfaced in one pass, since payloads are
// batch-submitted and re-submission is expensive.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/openclaw/recipekit/pkg/validator"
)

// ErrMalformedSchema is returned when the schema document does not define
// the required-field list for recipe records.
var ErrMalformedSchema = errors.New("schema does not define properties.recipes.items.required")

// Schema is the once-loaded structural contract. Read-only for the run.
type Schema struct {
	// Required lists the field names every record must carry.
	Required []string
}

// schemaDoc mirrors the JSON Schema subset the repository contract uses.
type schemaDoc struct {
	Properties struct {
		Recipes struct {
			Items struct {
				Required []string `json:"required"`
			} `json:"items"`
		} `json:"recipes"`
	} `json:"properties"`
}

// Load reads the schema document from disk.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var doc schemaDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	required := doc.Properties.Recipes.Items.Required
	if len(required) == 0 {
		return nil, ErrMalformedSchema
	}

	return &Schema{Required: required}, nil
}

// Validate checks a decoded payload against the schema and returns every
// error found as human-readable strings; an empty slice means valid. It
// never fails outright on malformed-but-well-typed input.
func Validate(payload any, s *Schema) []string {
	root, ok := payload.(map[string]any)
	if !ok {
		return []string{"payload must be an object"}
	}

	recipes, ok := root["recipes"].([]any)
	if !ok || len(recipes) == 0 {
		return []string{"payload.recipes must be a non-empty list"}
	}

	var errs validator.ValidationErrors
	for idx, entry := range recipes {
		field := fmt.Sprintf("recipes[%d]", idx)

		record, ok := entry.(map[string]any)
		if !ok {
			errs.Add(validator.ValidationError{Field: field, Message: "must be an object"})
			continue
		}

		rules := make([]validator.Rule, 0, len(s.Required)+2)
		for _, name := range s.Required {
			_, present := record[name]
			rules = append(rules, validator.HasField(field, name, present))
		}
		if raw, present := record["slug"]; present {
			value, _ := raw.(string)
			rules = append(rules, validator.MatchesSlug(field, value))
		}
		if raw, present := record["date"]; present {
			value, _ := raw.(string)
			rules = append(rules, validator.MatchesDate(field, value))
		}

		errs = append(errs, validator.ExtractValidationErrors(validator.Apply(rules...))...)
	}

	return errs.Messages()
}
