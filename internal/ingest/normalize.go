package ingest

import (
	"strings"
	"time"

	"github.com/openclaw/recipekit/pkg/sanitizer"
	"github.com/openclaw/recipekit/pkg/slug"
	"github.com/openclaw/recipekit/pkg/validator"
)

const dateLayout = "2006-01-02"

// cleanImageRef strips markup and links from an image reference but keeps
// bare URLs intact, so the https:// allow-rule below has something to
// inspect. The prefix check is the actual gate.
var cleanImageRef = sanitizer.Compose(
	sanitizer.StripHTMLTags,
	sanitizer.CollapseMarkdownLinks,
	sanitizer.NormalizeWhitespace,
)

// Normalize converts one raw record into a sanitized Recipe.
//
// The slug is the raw one when already valid, otherwise derived from the
// sanitized title. The date is the raw one when it matches YYYY-MM-DD; an
// absent date defaults to the current UTC calendar date, while a present
// but malformed one is a hard error (ErrInvalidDate). Ingredients and
// steps must survive sanitization non-empty or the record is refused
// (ErrEmptyAfterSanitization).
func Normalize(raw RawRecord) (*Recipe, error) {
	title := sanitizer.CleanText(raw.stringField("title"))

	canonical, err := slug.Derive(raw.stringField("slug"), title)
	if err != nil {
		return nil, err
	}

	date := raw.stringField("date")
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if !validator.IsDate(date) {
		return nil, ErrInvalidDate
	}

	tags := sanitizer.Map(sanitizer.CleanList(raw.listField("tags")), sanitizer.ToLower)

	image := cleanImageRef(raw.stringField("image"))
	if image != "" && !strings.HasPrefix(image, "assets/") && !strings.HasPrefix(image, "https://") {
		image = ""
	}

	meta := Meta{
		Title:    title,
		Date:     date,
		Summary:  sanitizer.CleanText(raw.stringField("summary")),
		Tags:     tags,
		PrepTime: sanitizer.CleanText(raw.stringField("prep_time")),
		CookTime: sanitizer.CleanText(raw.stringField("cook_time")),
		Serves:   sanitizer.CleanText(raw.stringField("serves")),
		Image:    image,
		Source:   sanitizer.CleanText(raw.stringField("source")),
	}

	ingredients := sanitizer.CleanList(raw.listField("ingredients"))
	steps := sanitizer.CleanList(raw.listField("steps"))
	notes := sanitizer.CleanList(raw.listField("notes"))

	if len(ingredients) == 0 || len(steps) == 0 {
		return nil, ErrEmptyAfterSanitization
	}

	return &Recipe{
		Slug:        canonical,
		Meta:        meta,
		Ingredients: ingredients,
		Steps:       steps,
		Notes:       notes,
	}, nil
}
