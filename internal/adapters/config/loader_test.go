package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	opts, err := config.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, config.DefaultRecipePath, opts.RecipePath)
	require.Empty(t, opts.Ignore)
}

func TestLoad_ReadsOptions(t *testing.T) {
	root := t.TempDir()
	content := "recipe_path: build/recipe.json\nignore:\n  - vendor\n  - fixtures\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "chef.yaml"), []byte(content), 0o644))

	opts, err := config.Load(root)
	require.NoError(t, err)
	require.Equal(t, "build/recipe.json", opts.RecipePath)
	require.Equal(t, []string{"vendor", "fixtures"}, opts.Ignore)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "chef.yaml"), []byte("ignore: [vendor]\n"), 0o644))

	opts, err := config.Load(root)
	require.NoError(t, err)
	require.Equal(t, config.DefaultRecipePath, opts.RecipePath)
}

func TestLoad_MalformedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "chef.yaml"), []byte(":\n\t-"), 0o644))

	_, err := config.Load(root)
	require.Error(t, err)
}
