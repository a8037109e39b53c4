package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openclaw/recipekit/pkg/slug"
)

// ErrPageExists is returned when the target page already exists and Force
// was not set.
var ErrPageExists = errors.New("recipe page already exists")

// Page holds the operator-supplied fields of a new recipe page. All fields
// are trusted as given; the ingest pipeline's sanitization rules do not
// apply here.
type Page struct {
	Title       string
	Date        string
	Tags        []string
	PrepTime    string
	TotalTime   string
	Servings    string
	SourceURL   string
	Description string
	Note        string
	NoteTitle   string
	ImageRef    string
	ImageAlt    string
	Ingredients []string
	Method      []string
	Tip         string
	Extra       string
}

// Slug returns the filename stem for the page, falling back to "recipe"
// when the title yields nothing usable.
func (p Page) Slug() string {
	if s := slug.Make(p.Title); s != "" {
		return s
	}
	return "recipe"
}

// Render produces the page's Markdown: front matter followed by the hero
// image, intro, highlighted note, ingredient and method sections, tip and
// any extra Markdown, each included only when supplied.
func (p Page) Render() string {
	fm := []string{"---"}
	fm = append(fm, fmt.Sprintf("title: %s", p.Title))
	fm = append(fm, fmt.Sprintf("date: %s", p.Date))
	if len(p.Tags) > 0 {
		fm = append(fm, fmt.Sprintf("tags: [%s]", strings.Join(p.Tags, ", ")))
	}
	if p.PrepTime != "" {
		fm = append(fm, fmt.Sprintf("prep_time: %s", p.PrepTime))
	}
	if p.TotalTime != "" {
		fm = append(fm, fmt.Sprintf("total_time: %s", p.TotalTime))
	}
	if p.Servings != "" {
		fm = append(fm, fmt.Sprintf("servings: %s", p.Servings))
	}
	if p.SourceURL != "" {
		fm = append(fm, fmt.Sprintf("source_url: %s", p.SourceURL))
	}
	if p.ImageRef != "" {
		fm = append(fm, fmt.Sprintf("image: %s", p.ImageRef))
	}
	fm = append(fm, "---\n")

	var body []string
	if p.ImageRef != "" {
		body = append(body, fmt.Sprintf("![%s](%s)\n", p.ImageAlt, p.ImageRef))
	}
	if p.Description != "" {
		body = append(body, p.Description+"\n")
	}
	if p.Note != "" {
		title := p.NoteTitle
		if title == "" {
			title = "Note"
		}
		body = append(body, fmt.Sprintf("> **%s**: %s\n", title, p.Note))
	}
	if len(p.Ingredients) > 0 {
		lines := make([]string, 0, len(p.Ingredients))
		for _, item := range p.Ingredients {
			lines = append(lines, fmt.Sprintf("- %s", item))
		}
		body = append(body, "#### Ingredients\n"+strings.Join(lines, "\n")+"\n")
	}
	if len(p.Method) > 0 {
		lines := make([]string, 0, len(p.Method))
		for idx, step := range p.Method {
			lines = append(lines, fmt.Sprintf("%d. %s", idx+1, step))
		}
		body = append(body, "#### Method\n"+strings.Join(lines, "\n")+"\n")
	}
	if p.Tip != "" {
		body = append(body, fmt.Sprintf("> **Tip:** %s\n", p.Tip))
	}
	if p.Extra != "" {
		body = append(body, p.Extra+"\n")
	}

	return strings.Join(append(fm, body...), "\n")
}

// Create writes the rendered page as <slug>.md under dir and returns the
// path written. An existing page is only replaced when force is set.
func (p Page) Create(dir string, force bool) (string, error) {
	target := filepath.Join(dir, p.Slug()+".md")

	if _, err := os.Stat(target); err == nil && !force {
		return "", fmt.Errorf("%w: %s", ErrPageExists, target)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create recipes directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(p.Render()), 0o644); err != nil {
		return "", fmt.Errorf("write recipe page: %w", err)
	}

	return target, nil
}
