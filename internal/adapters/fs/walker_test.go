package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/fs"
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalker_DiscoversManifestsSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[workspace]\n")
	writeFile(t, filepath.Join(root, "zeta", "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(root, "alpha", "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(root, "alpha", "nested", "Cargo.toml"), "[package]\n")

	paths, err := fs.NewWalker().Manifests(root)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Cargo.toml",
		"alpha/Cargo.toml",
		"alpha/nested/Cargo.toml",
		"zeta/Cargo.toml",
	}, paths)
}

func TestWalker_SkipsBuildOutputDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\n")
	// Manifests under target/ belong to already-built dependencies.
	writeFile(t, filepath.Join(root, "target", "debug", "deps", "Cargo.toml"), "[package]\n")

	paths, err := fs.NewWalker().Manifests(root)
	require.NoError(t, err)
	require.Equal(t, []string{"Cargo.toml"}, paths)
}

func TestWalker_DescendsIntoTargetWithoutSiblingManifest(t *testing.T) {
	// A directory that merely happens to be called "target" is only build
	// output when its parent holds a manifest.
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[workspace]\n")
	writeFile(t, filepath.Join(root, "crates", "target", "Cargo.toml"), "[package]\n")

	paths, err := fs.NewWalker().Manifests(root)
	require.NoError(t, err)
	require.Contains(t, paths, "crates/target/Cargo.toml")
}

func TestWalker_SkipsVersionControlAndIgnores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(root, ".git", "Cargo.toml"), "[package]\n")
	writeFile(t, filepath.Join(root, "vendor", "dep", "Cargo.toml"), "[package]\n")

	paths, err := fs.NewWalker("vendor").Manifests(root)
	require.NoError(t, err)
	require.Equal(t, []string{"Cargo.toml"}, paths)
}

func TestReadOptional(t *testing.T) {
	root := t.TempDir()

	data, err := fs.ReadOptional(filepath.Join(root, "missing"))
	require.NoError(t, err)
	require.Nil(t, data)

	writeFile(t, filepath.Join(root, "present"), "content")
	data, err = fs.ReadOptional(filepath.Join(root, "present"))
	require.NoError(t, err)
	require.Equal(t, []byte("content"), data)
}

func TestReadOptional_ReadFailure(t *testing.T) {
	// Reading a directory is a filesystem failure, not a missing file.
	_, err := fs.ReadOptional(t.TempDir())
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestDigest_Stable(t *testing.T) {
	a := fs.Digest([]byte("recipe"))
	b := fs.Digest([]byte("recipe"))
	require.Equal(t, a, b)
	require.Len(t, a, 16)
	require.NotEqual(t, a, fs.Digest([]byte("other")))
}
