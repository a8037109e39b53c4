package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const frontmatterDelimiter = "---"

// frontmatter renders the allow-listed metadata block in its fixed field
// order. Empty values are omitted; "draft: true" is appended last,
// unconditionally, to flag the artifact as machine-generated and not yet
// reviewed.
func frontmatter(m Meta) []string {
	lines := []string{frontmatterDelimiter}

	scalar := func(key, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", key, value))
		}
	}

	scalar("title", m.Title)
	scalar("date", m.Date)
	scalar("summary", m.Summary)
	if len(m.Tags) > 0 {
		lines = append(lines, "tags:")
		for _, tag := range m.Tags {
			lines = append(lines, fmt.Sprintf("  - %s", tag))
		}
	}
	scalar("prep_time", m.PrepTime)
	scalar("cook_time", m.CookTime)
	scalar("serves", m.Serves)
	scalar("image", m.Image)
	scalar("source", m.Source)

	lines = append(lines, "draft: true", frontmatterDelimiter)
	return lines
}

// Emit serializes a sanitized recipe into its document form: the metadata
// block, then Ingredients as hyphen bullets, Steps as 1-based numbered
// lines and, when present, Notes. The result is trimmed and ends with
// exactly one trailing newline.
func Emit(r *Recipe) string {
	lines := frontmatter(r.Meta)

	lines = append(lines, "", "## Ingredients", "")
	for _, item := range r.Ingredients {
		lines = append(lines, fmt.Sprintf("- %s", item))
	}

	lines = append(lines, "", "## Steps", "")
	for idx, step := range r.Steps {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, step))
	}

	if len(r.Notes) > 0 {
		lines = append(lines, "", "## Notes", "")
		for _, note := range r.Notes {
			lines = append(lines, fmt.Sprintf("- %s", note))
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// Writer persists emitted documents under a single output directory.
type Writer struct {
	Dir string
}

// Write creates the output directory if absent and writes (overwriting) the
// document for the given recipe as <slug>.md, returning the path written.
// This is the only filesystem side effect in the ingest core.
func (w Writer) Write(r *Recipe) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	target := filepath.Join(w.Dir, r.Slug+".md")
	if err := os.WriteFile(target, []byte(Emit(r)), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return target, nil
}
