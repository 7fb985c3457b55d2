// Package app implements the application layer: the prepare and cook
// operations orchestrating the recipe engine.
package app

import (
	"github.com/LukeMathWalker/cargo-chef/internal/adapters/store"
	"github.com/LukeMathWalker/cargo-chef/internal/core/ports"
)

// StoreFactory builds a RecipeStore for the artifact at the given path.
type StoreFactory func(path string) ports.RecipeStore

// App represents the main application logic.
type App struct {
	logger   ports.Logger
	executor ports.Executor
	stores   StoreFactory
}

// New creates a new App instance.
func New(logger ports.Logger, executor ports.Executor, stores StoreFactory) *App {
	if stores == nil {
		stores = func(path string) ports.RecipeStore { return store.New(path) }
	}
	return &App{
		logger:   logger,
		executor: executor,
		stores:   stores,
	}
}
