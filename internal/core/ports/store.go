package ports

import "github.com/LukeMathWalker/cargo-chef/internal/core/domain"

// RecipeStore persists and restores the serialized recipe artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecipeStore interface {
	// Save writes the recipe with deterministic bytes and returns the
	// content digest of the written artifact.
	Save(r *domain.Recipe) (string, error)

	// Load reads the recipe back and returns it with its content digest.
	// An artifact written by an incompatible tool version yields
	// domain.ErrRecipeFormat.
	Load() (*domain.Recipe, string, error)
}
