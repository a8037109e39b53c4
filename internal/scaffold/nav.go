package scaffold

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package-specific errors
var (
	// ErrNoRecipesBlock is returned when the navigation file has no
	// "- Recipes:" block to insert under.
	ErrNoRecipesBlock = errors.New("no '- Recipes:' block in navigation file")

	// ErrNavUnparseable is returned when the navigation file would no
	// longer parse as YAML after the insert; the file is left untouched.
	ErrNavUnparseable = errors.New("navigation file would not parse after insert")
)

const (
	recipesMarker = "- Recipes:"
	entryIndent   = "      -"
)

// Nav edits the site navigation file in place.
type Nav struct {
	Path string
}

// Insert adds a navigation entry for the given page immediately after the
// existing block of recipe entries. The edit is idempotent: when the exact
// entry is already present nothing is written. Line-based insertion keeps
// the operator's formatting intact; the result is re-parsed as YAML before
// the write to guarantee the file stays loadable.
func (n Nav) Insert(title, slug string) error {
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read navigation file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	entry := fmt.Sprintf("%s %q: %s.md", entryIndent, title, slug)

	for _, line := range lines {
		if line == entry {
			return nil
		}
	}

	markerIdx := -1
	for idx, line := range lines {
		if strings.TrimSpace(line) == recipesMarker {
			markerIdx = idx
			break
		}
	}
	if markerIdx == -1 {
		return ErrNoRecipesBlock
	}

	insertIdx := markerIdx + 1
	for insertIdx < len(lines) && strings.HasPrefix(lines[insertIdx], entryIndent) {
		insertIdx++
	}

	lines = append(lines[:insertIdx], append([]string{entry}, lines[insertIdx:]...)...)
	edited := strings.Join(lines, "\n") + "\n"

	var probe any
	if err := yaml.Unmarshal([]byte(edited), &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrNavUnparseable, err)
	}

	if err := os.WriteFile(n.Path, []byte(edited), 0o644); err != nil {
		return fmt.Errorf("write navigation file: %w", err)
	}
	return nil
}
