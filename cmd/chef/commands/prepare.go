package commands

import (
	"github.com/LukeMathWalker/cargo-chef/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newPrepareCmd() *cobra.Command {
	var opts app.PrepareOptions

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Analyze the project and write the recipe file",
		Long: "Determine the minimum subset of files (Cargo.lock and Cargo.toml " +
			"manifests) required to build the project's dependencies and write it " +
			"as a recipe, later consumed by `chef cook`.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Prepare(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", ".", "Project root to analyze")
	cmd.Flags().StringVar(&opts.RecipePath, "recipe-path", "", "Where to write the recipe (default recipe.json, or chef.yaml's recipe_path)")
	cmd.Flags().StringVar(&opts.Member, "member", "", "Scope the recipe to one workspace member")

	return cmd
}
