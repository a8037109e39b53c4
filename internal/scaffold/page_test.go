package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/recipekit/internal/scaffold"
)

func TestPage_Slug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "simple title", title: "Tomato Soup", expected: "tomato-soup"},
		{name: "punctuation", title: "Mac & Cheese!", expected: "mac-cheese"},
		{name: "unusable title falls back", title: "!!!", expected: "recipe"},
		{name: "empty title falls back", title: "", expected: "recipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scaffold.Page{Title: tt.title}
			assert.Equal(t, tt.expected, p.Slug())
		})
	}
}

func TestPage_Render(t *testing.T) {
	t.Run("full page", func(t *testing.T) {
		p := scaffold.Page{
			Title:       "Tomato Soup",
			Date:        "2024-02-13",
			Tags:        []string{"soup", "weeknight"},
			PrepTime:    "10 min",
			TotalTime:   "30 min",
			Servings:    "4",
			SourceURL:   "https://example.com/recipe",
			Description: "A classic.",
			Note:        "Use ripe tomatoes.",
			ImageRef:    "assets/images/tomato-soup.jpg",
			ImageAlt:    "Bowl of soup",
			Ingredients: []string{"tomatoes", "onion"},
			Method:      []string{"Sweat the onion.", "Simmer."},
			Tip:         "Serve with bread.",
			Extra:       "More reading below.",
		}

		out := p.Render()

		assert.Contains(t, out, "title: Tomato Soup\n")
		assert.Contains(t, out, "tags: [soup, weeknight]\n")
		assert.Contains(t, out, "source_url: https://example.com/recipe\n")
		assert.Contains(t, out, "image: assets/images/tomato-soup.jpg\n")
		assert.Contains(t, out, "![Bowl of soup](assets/images/tomato-soup.jpg)\n")
		assert.Contains(t, out, "> **Note**: Use ripe tomatoes.\n")
		assert.Contains(t, out, "#### Ingredients\n- tomatoes\n- onion\n")
		assert.Contains(t, out, "#### Method\n1. Sweat the onion.\n2. Simmer.\n")
		assert.Contains(t, out, "> **Tip:** Serve with bread.\n")
		assert.Contains(t, out, "More reading below.\n")
	})

	t.Run("minimal page omits optional sections", func(t *testing.T) {
		p := scaffold.Page{Title: "Plain", Date: "2024-01-01"}
		out := p.Render()

		assert.Contains(t, out, "title: Plain\n")
		assert.NotContains(t, out, "tags:")
		assert.NotContains(t, out, "####")
		assert.NotContains(t, out, "> **")
	})

	t.Run("custom note title", func(t *testing.T) {
		p := scaffold.Page{Title: "X", Date: "2024-01-01", Note: "n", NoteTitle: "Warning"}
		assert.Contains(t, p.Render(), "> **Warning**: n\n")
	})
}

func TestPage_Create(t *testing.T) {
	t.Run("writes page", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "recipes")
		p := scaffold.Page{Title: "Tomato Soup", Date: "2024-02-13"}

		path, err := p.Create(dir, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tomato-soup.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, p.Render(), string(content))
	})

	t.Run("refuses overwrite without force", func(t *testing.T) {
		dir := t.TempDir()
		p := scaffold.Page{Title: "Soup", Date: "2024-01-01"}

		_, err := p.Create(dir, false)
		require.NoError(t, err)

		_, err = p.Create(dir, false)
		assert.ErrorIs(t, err, scaffold.ErrPageExists)

		_, err = p.Create(dir, true)
		assert.NoError(t, err)
	})
}
