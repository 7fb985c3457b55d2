package commands

import (
	"github.com/LukeMathWalker/cargo-chef/internal/adapters/config"
	"github.com/LukeMathWalker/cargo-chef/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCookCmd() *cobra.Command {
	var opts app.CookOptions

	cmd := &cobra.Command{
		Use:   "cook",
		Short: "Re-hydrate the skeleton from a recipe and build its dependencies",
		Long: "Regenerate the minimum project skeleton identified by `chef prepare` " +
			"and build it, so that the dependency layer can be cached. Overwrites " +
			"any manifests and source stubs at the skeleton's paths: run it against " +
			"a disposable directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Cook(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.RecipePath, "recipe-path", config.DefaultRecipePath, "Recipe file to cook")
	flags.StringVar(&opts.Path, "path", ".", "Directory to hydrate and build in")
	flags.BoolVar(&opts.Release, "release", false, "Build in release mode")
	flags.StringVar(&opts.Profile, "profile", "", "Build with the given profile")
	flags.BoolVar(&opts.Check, "check", false, "Run `cargo check` instead of `cargo build`")
	flags.StringArrayVar(&opts.Targets, "target", nil, "Build for the target triple (repeatable)")
	flags.StringVar(&opts.TargetDir, "target-dir", "", "Directory for all generated artifacts")
	flags.BoolVar(&opts.NoDefaultFeatures, "no-default-features", false, "Do not activate the `default` feature")
	flags.StringSliceVar(&opts.Features, "features", nil, "Comma separated list of features to activate")
	flags.BoolVar(&opts.Benches, "benches", false, "Build all benches")
	flags.BoolVar(&opts.Tests, "tests", false, "Build all tests")
	flags.BoolVar(&opts.Examples, "examples", false, "Build all examples")
	flags.BoolVar(&opts.AllTargets, "all-targets", false, "Build all targets (equivalent to --tests --benches --examples)")
	flags.StringVarP(&opts.Package, "package", "p", "", "Package to build")
	flags.StringVar(&opts.Bin, "bin", "", "Build only the specified binary")
	flags.BoolVar(&opts.Workspace, "workspace", false, "Build all members in the workspace")
	flags.BoolVar(&opts.Locked, "locked", false, "Require the lockfile to be up to date")
	flags.BoolVar(&opts.Frozen, "frozen", false, "Require lockfile and cache to be up to date")
	flags.BoolVar(&opts.Offline, "offline", false, "Build offline")
	flags.BoolVar(&opts.NoStd, "no-std", false, "Hydrate no-std placeholder entry points (does not affect proc-macro crates)")

	return cmd
}
