package app

import (
	"context"
	"fmt"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/config"
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/LukeMathWalker/cargo-chef/internal/engine/skeleton"
	"go.trai.ch/zerr"
)

// PrepareOptions configures the prepare operation.
type PrepareOptions struct {
	// Path is the project root to analyze. Defaults to the current directory.
	Path string

	// RecipePath is where the recipe artifact is written. Overrides the
	// chef.yaml setting and the built-in default.
	RecipePath string

	// Member scopes the recipe to one workspace member.
	Member string
}

// Prepare analyzes the project and writes the recipe artifact: the minimal,
// order-independent representation of what must be compiled to satisfy the
// dependency graph.
func (a *App) Prepare(_ context.Context, opts PrepareOptions) error {
	root := opts.Path
	if root == "" {
		root = "."
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	recipePath := opts.RecipePath
	if recipePath == "" {
		recipePath = cfg.RecipePath
	}

	s, err := skeleton.Derive(root, skeleton.DeriveOptions{
		Member: opts.Member,
		Ignore: cfg.Ignore,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to compute recipe")
	}

	digest, err := a.stores(recipePath).Save(domain.NewRecipe(s))
	if err != nil {
		return zerr.Wrap(err, "failed to save recipe")
	}

	a.logger.Info(fmt.Sprintf(
		"recipe written to %s: %d manifests, %d workspace members, digest %s",
		recipePath, len(s.Manifests), len(s.Members), digest,
	))
	return nil
}
