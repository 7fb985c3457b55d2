package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/config"
	"github.com/LukeMathWalker/cargo-chef/internal/engine/skeleton"
	"go.trai.ch/zerr"
)

// CookOptions configures the cook operation. The build flags are forwarded to
// the package manager unmodified.
type CookOptions struct {
	// Path is the directory the skeleton is hydrated into and the build runs
	// in. Defaults to the current directory.
	Path string

	// RecipePath is where the recipe artifact is read from.
	RecipePath string

	Release bool
	Profile string
	// Check runs the resolver's check subcommand instead of a full build.
	Check bool

	Targets   []string
	TargetDir string

	NoDefaultFeatures bool
	Features          []string

	Benches    bool
	Tests      bool
	Examples   bool
	AllTargets bool

	Package   string
	Bin       string
	Workspace bool

	Locked  bool
	Frozen  bool
	Offline bool

	// NoStd hydrates no-std placeholder entry points.
	NoStd bool
}

// Cook hydrates the skeleton identified by the recipe and delegates the
// dependency-only build to the package manager.
func (a *App) Cook(ctx context.Context, opts CookOptions) error {
	recipePath := opts.RecipePath
	if recipePath == "" {
		recipePath = config.DefaultRecipePath
	}
	root := opts.Path
	if root == "" {
		root = "."
	}

	if stdoutIsTerminal() {
		a.logger.Warn("stdout is a terminal: cook overwrites manifests and source stubs in place and is meant to run against a disposable directory")
	}

	recipe, digest, err := a.stores(recipePath).Load()
	if err != nil {
		return err
	}
	s, err := recipe.Skeleton()
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf(
		"recipe loaded from %s: %d manifests, %d workspace members, digest %s",
		recipePath, len(s.Manifests), len(s.Members), digest,
	))

	if err := skeleton.Hydrate(ctx, s, root, opts.NoStd); err != nil {
		return zerr.Wrap(err, "failed to hydrate skeleton")
	}

	if err := a.executor.Execute(ctx, root, opts.buildArgs()); err != nil {
		return err
	}

	// The compiled placeholder libraries must not survive: the real build
	// has to recompile the workspace's own crates from real sources.
	err = skeleton.RemoveCompiledDummies(s, root, skeleton.CleanupOptions{
		Profile:   opts.profile(),
		Targets:   opts.Targets,
		TargetDir: opts.TargetDir,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to clean up placeholder artifacts")
	}

	a.logger.Info("dependency build complete")
	return nil
}

func (o CookOptions) profile() string {
	switch {
	case o.Profile != "":
		return o.Profile
	case o.Release:
		return "release"
	default:
		return "debug"
	}
}

// buildArgs assembles the package manager invocation, forwarding every
// user-specified flag untouched.
func (o CookOptions) buildArgs() []string {
	subcommand := "build"
	if o.Check {
		subcommand = "check"
	}
	args := []string{subcommand}

	if o.Release {
		args = append(args, "--release")
	}
	if o.Profile != "" {
		args = append(args, "--profile", o.Profile)
	}
	for _, t := range o.Targets {
		args = append(args, "--target", t)
	}
	if o.TargetDir != "" {
		args = append(args, "--target-dir", o.TargetDir)
	}
	if o.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	if len(o.Features) > 0 {
		args = append(args, "--features", strings.Join(o.Features, ","))
	}
	if o.Benches {
		args = append(args, "--benches")
	}
	if o.Tests {
		args = append(args, "--tests")
	}
	if o.Examples {
		args = append(args, "--examples")
	}
	if o.AllTargets {
		args = append(args, "--all-targets")
	}
	if o.Package != "" {
		args = append(args, "--package", o.Package)
	}
	if o.Bin != "" {
		args = append(args, "--bin", o.Bin)
	}
	if o.Workspace {
		args = append(args, "--workspace")
	}
	if o.Locked {
		args = append(args, "--locked")
	}
	if o.Frozen {
		args = append(args, "--frozen")
	}
	if o.Offline {
		args = append(args, "--offline")
	}
	return args
}

func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
