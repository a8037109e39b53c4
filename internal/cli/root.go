// Package cli wires the recipekit commands together. Each command resolves
// its defaults from the environment-driven configuration and lets flags
// override them, prints results on stdout and errors on stderr, and exits
// non-zero through the returned error.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the recipekit command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recipekit",
		Short: "Tooling for the recipe content repository",
		Long: "recipekit ingests externally-sourced recipe payloads into sanitized " +
			"draft documents, scaffolds hand-authored recipe pages, and keeps " +
			"image assets within size bounds.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		ingestCmd(),
		addCmd(),
		resizeCmd(),
	)

	return root
}
