package skeleton_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/LukeMathWalker/cargo-chef/internal/engine/skeleton"
	"github.com/stretchr/testify/require"
)

func TestHydrate_WritesEveryTargetPlaceholder(t *testing.T) {
	source := workspaceProject(t)
	writeFile(t, filepath.Join(source, "core", "tests", "smoke.rs"), "#[test] fn it_works() {}")
	writeFile(t, filepath.Join(source, "Cargo.lock"), "version = 3\n")

	s, err := skeleton.Derive(source, skeleton.DeriveOptions{})
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, skeleton.Hydrate(context.Background(), s, out, false))

	for _, m := range s.Manifests {
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(m.RelativePath)))
		require.NoError(t, err)
		require.Equal(t, m.Contents, string(data))

		dir := filepath.Dir(filepath.Join(out, filepath.FromSlash(m.RelativePath)))
		for _, tgt := range m.Targets {
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(tgt.Path)))
			require.NoError(t, err)
			require.Equal(t, tgt.EntryPoint(false), string(data))
		}
	}

	// Placeholders hold no trace of the real sources.
	lib, err := os.ReadFile(filepath.Join(out, "core", "src", "lib.rs"))
	require.NoError(t, err)
	require.NotContains(t, string(lib), "real")

	lock, err := os.ReadFile(filepath.Join(out, "Cargo.lock"))
	require.NoError(t, err)
	require.Equal(t, s.LockFile, lock)
}

func TestHydrate_RoundTripThroughRecipe(t *testing.T) {
	source := singlePackageProject(t)

	derived, err := skeleton.Derive(source, skeleton.DeriveOptions{})
	require.NoError(t, err)

	restored, err := domain.NewRecipe(derived).Skeleton()
	require.NoError(t, err)
	require.Equal(t, derived, restored)

	out := t.TempDir()
	require.NoError(t, skeleton.Hydrate(context.Background(), restored, out, false))

	original, err := os.ReadFile(filepath.Join(source, "Cargo.lock"))
	require.NoError(t, err)
	hydrated, err := os.ReadFile(filepath.Join(out, "Cargo.lock"))
	require.NoError(t, err)
	require.Equal(t, original, hydrated)
}

func TestHydrate_ConfigAndToolchain(t *testing.T) {
	s := &domain.Skeleton{
		Manifests: []domain.Manifest{{
			RelativePath: "Cargo.toml",
			Contents:     "[package]\nname = \"app\"\nversion = \"0.1.0\"\n",
		}},
		ConfigFile: []byte("[build]\njobs = 2\n"),
		Toolchain:  &domain.ToolchainFile{Kind: domain.ToolchainBare, Content: "1.75\n"},
	}

	out := t.TempDir()
	require.NoError(t, skeleton.Hydrate(context.Background(), s, out, false))

	cfg, err := os.ReadFile(filepath.Join(out, ".cargo", "config.toml"))
	require.NoError(t, err)
	require.Equal(t, s.ConfigFile, cfg)

	tc, err := os.ReadFile(filepath.Join(out, "rust-toolchain"))
	require.NoError(t, err)
	require.Equal(t, "1.75\n", string(tc))
}

func TestHydrate_NoStdPlaceholders(t *testing.T) {
	s := &domain.Skeleton{
		Manifests: []domain.Manifest{{
			RelativePath: "Cargo.toml",
			Contents:     "[package]\nname = \"fw\"\nversion = \"0.1.0\"\n",
			Package:      &domain.Package{Name: "fw", Version: "0.1.0"},
			Targets: []domain.Target{
				{Kind: domain.TargetBin, Name: "fw", Path: "src/main.rs", Harness: true},
			},
		}},
	}

	out := t.TempDir()
	require.NoError(t, skeleton.Hydrate(context.Background(), s, out, true))

	main, err := os.ReadFile(filepath.Join(out, "src", "main.rs"))
	require.NoError(t, err)
	require.Contains(t, string(main), "#![no_std]")
}

func TestHydrate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &domain.Skeleton{
		Manifests: []domain.Manifest{{
			RelativePath: "Cargo.toml",
			Contents:     "[package]\nname = \"app\"\nversion = \"0.1.0\"\n",
			Package:      &domain.Package{Name: "app", Version: "0.1.0"},
			Targets: []domain.Target{
				{Kind: domain.TargetBin, Name: "app", Path: "src/main.rs", Harness: true},
			},
		}},
	}

	err := skeleton.Hydrate(ctx, s, t.TempDir(), false)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHydrate_OverwritesExistingFiles(t *testing.T) {
	s := &domain.Skeleton{
		Manifests: []domain.Manifest{{
			RelativePath: "Cargo.toml",
			Contents:     "[package]\nname = \"app\"\nversion = \"0.2.0\"\n",
		}},
	}

	out := t.TempDir()
	writeFile(t, filepath.Join(out, "Cargo.toml"), "stale")

	require.NoError(t, skeleton.Hydrate(context.Background(), s, out, false))

	data, err := os.ReadFile(filepath.Join(out, "Cargo.toml"))
	require.NoError(t, err)
	require.Equal(t, s.Manifests[0].Contents, string(data))
}
