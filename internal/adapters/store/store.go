// Package store persists the recipe artifact as a flat JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/fs"
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/LukeMathWalker/cargo-chef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.RecipeStore backed by a file at a fixed path.
//
// The artifact is immutable once written: a new run overwrites it wholesale,
// it is never mutated in place.
type Store struct {
	path string
}

// New creates a RecipeStore writing to the given path.
func New(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Save writes the recipe with deterministic bytes: object keys are
// serialized in sorted order and nothing run-dependent (timestamps, absolute
// paths) is embedded, so an unchanged skeleton yields byte-identical output.
func (s *Store) Save(r *domain.Recipe) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize recipe")
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", domain.IOError(err, "failed to create recipe directory", dir)
		}
	}
	//nolint:gosec // recipe artifacts are world-readable by design
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return "", domain.IOError(err, "failed to write recipe", s.path)
	}
	return fs.Digest(data), nil
}

// Load reads the recipe back and validates its format version.
func (s *Store) Load() (*domain.Recipe, string, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, "", domain.IOError(err, "failed to read recipe", s.path)
	}

	var recipe domain.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		formatErr := zerr.With(domain.ErrRecipeFormat, "path", s.path)
		return nil, "", zerr.With(formatErr, "detail", err.Error())
	}
	if recipe.Version != domain.RecipeVersion {
		formatErr := zerr.With(domain.ErrRecipeFormat, "path", s.path)
		formatErr = zerr.With(formatErr, "found", recipe.Version)
		return nil, "", zerr.With(formatErr, "supported", domain.RecipeVersion)
	}
	return &recipe, fs.Digest(data), nil
}

var _ ports.RecipeStore = (*Store)(nil)
