// Package commands implements the CLI commands for the chef tool.
package commands

import (
	"context"

	"github.com/LukeMathWalker/cargo-chef/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for chef.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "chef",
		Short:         "Cache the dependency build of your Cargo project",
		Long: "chef separates building the dependency graph from building application " +
			"code: prepare distills a project into a recipe, cook rebuilds a skeleton " +
			"from that recipe and compiles only the dependencies, so the resulting " +
			"layer is reused as long as the dependency graph is unchanged.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newCookCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
