package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/openclaw/recipekit/internal/images"
	"github.com/openclaw/recipekit/internal/scaffold"
	"github.com/openclaw/recipekit/pkg/config"
)

func addCmd() *cobra.Command {
	var (
		page      scaffold.Page
		imagePath string
		imageURL  string
		force     bool
	)

	var cfg scaffold.Config
	config.MustLoad(&cfg)

	var imgCfg images.Config
	config.MustLoad(&imgCfg)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Scaffold a new recipe page and update the navigation",
		Long: "Renders a front-matter recipe page from the given fields, optionally " +
			"places a hero image, and inserts a navigation entry. Input is " +
			"operator-trusted; no sanitization is applied.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page.Date == "" {
				page.Date = time.Now().UTC().Format("2006-01-02")
			}

			slug := page.Slug()

			if imagePath != "" || imageURL != "" {
				dest := filepath.Join(cfg.AssetsDir, slug+".jpg")
				var err error
				if imagePath != "" {
					err = scaffold.CopyImage(imagePath, dest)
				} else {
					err = scaffold.DownloadImage(cmd.Context(), imageURL, dest)
				}
				if err != nil {
					return err
				}
				page.ImageRef = fmt.Sprintf("assets/images/%s.jpg", slug)

				if _, err := images.Resize(cfg.AssetsDir, imgCfg.MaxDim, imgCfg.Quality); err != nil {
					return err
				}
			}

			path, err := page.Create(cfg.RecipesDir, force)
			if err != nil {
				return err
			}

			nav := scaffold.Nav{Path: cfg.NavPath}
			if err := nav.Insert(page.Title, slug); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Recipe scaffolded:", path)
			if page.ImageRef != "" {
				fmt.Fprintln(out, " - Hero image:", page.ImageRef)
			} else {
				fmt.Fprintln(out, " - Hero image: (none)")
			}
			fmt.Fprintln(out, " - Navigation entry inserted into", cfg.NavPath)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&page.Title, "title", "", "recipe title")
	flags.StringVar(&page.Date, "date", "", "date for front matter (default: today)")
	flags.StringSliceVar(&page.Tags, "tags", nil, "tags for front matter")
	flags.StringVar(&page.PrepTime, "prep-time", "", "preparation time")
	flags.StringVar(&page.TotalTime, "total-time", "", "total time")
	flags.StringVar(&page.Servings, "servings", "", "servings count")
	flags.StringVar(&page.SourceURL, "source-url", "", "URL recorded in front matter")
	flags.StringVar(&page.Description, "description", "", "intro paragraph")
	flags.StringVar(&page.Note, "note", "", "note highlighted after the intro")
	flags.StringVar(&page.NoteTitle, "note-title", "Note", "header for the note")
	flags.StringArrayVar(&page.Ingredients, "ingredient", nil, "ingredient line (repeatable)")
	flags.StringArrayVar(&page.Method, "method", nil, "method step (repeatable)")
	flags.StringVar(&page.Tip, "tip", "", "optional tip or serving suggestion")
	flags.StringVar(&page.Extra, "extra", "", "additional Markdown appended at the end")
	flags.StringVar(&page.ImageAlt, "image-alt", "Recipe photo", "alt text for the hero image")
	flags.StringVar(&imagePath, "image-path", "", "local hero image to copy into assets")
	flags.StringVar(&imageURL, "image-url", "", "remote hero image to download into assets")
	flags.BoolVar(&force, "force", false, "overwrite an existing page with the same slug")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("source-url")

	return cmd
}
