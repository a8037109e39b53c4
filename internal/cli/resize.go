package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclaw/recipekit/internal/images"
	"github.com/openclaw/recipekit/pkg/config"
)

func resizeCmd() *cobra.Command {
	var (
		maxDim  int
		quality int
	)

	var cfg images.Config
	config.MustLoad(&cfg)

	cmd := &cobra.Command{
		Use:   "resize-images [dir]",
		Short: "Downsample oversized recipe images in place",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.ImagesDir
			if len(args) == 1 {
				dir = args[0]
			}

			processed, err := images.Resize(dir, maxDim, quality)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(processed) == 0 {
				fmt.Fprintln(out, "No images needed resizing.")
				return nil
			}

			fmt.Fprintln(out, "Resized images:")
			for _, entry := range processed {
				fmt.Fprintf(out, "  %s: (%d, %d) -> (%d, %d)\n",
					entry.Name, entry.OldWidth, entry.OldHeight, entry.NewWidth, entry.NewHeight)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDim, "max-dim", cfg.MaxDim, "maximum width/height for output images")
	cmd.Flags().IntVar(&quality, "quality", cfg.Quality, "JPEG quality for resaved files")

	return cmd
}
