// Package config loads the optional chef.yaml options file.
package config

import (
	"os"
	"path/filepath"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultRecipePath is used when neither the flag nor chef.yaml names one.
const DefaultRecipePath = "recipe.json"

// Options holds the tool options read from chef.yaml. All fields are
// optional; a missing file yields the defaults.
type Options struct {
	// RecipePath overrides the default recipe artifact path.
	RecipePath string `yaml:"recipe_path"`

	// Ignore lists extra directory names or root-relative paths excluded
	// from manifest discovery.
	Ignore []string `yaml:"ignore"`
}

// Load reads chef.yaml from the given project root.
func Load(root string) (*Options, error) {
	opts := &Options{RecipePath: DefaultRecipePath}

	path := filepath.Join(root, "chef.yaml")
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, domain.IOError(err, "failed to read options file", path)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse options file"), "path", path)
	}
	if opts.RecipePath == "" {
		opts.RecipePath = DefaultRecipePath
	}
	return opts, nil
}
