package skeleton_test

import (
	"path/filepath"
	"testing"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/LukeMathWalker/cargo-chef/internal/engine/skeleton"
	"github.com/stretchr/testify/require"
)

func librarySkeleton() *domain.Skeleton {
	return &domain.Skeleton{
		Manifests: []domain.Manifest{{
			RelativePath: "Cargo.toml",
			Package:      &domain.Package{Name: "my-crate", Version: "0.1.0"},
			Targets: []domain.Target{
				{Kind: domain.TargetLib, Name: "my_crate", Path: "src/lib.rs"},
				{Kind: domain.TargetBuildScript, Name: "build-script-build", Path: "build.rs"},
			},
		}},
	}
}

func TestRemoveCompiledDummies(t *testing.T) {
	root := t.TempDir()
	debug := filepath.Join(root, "target", "debug")

	writeFile(t, filepath.Join(debug, "libmy_crate.rlib"), "")
	writeFile(t, filepath.Join(debug, "libmy_crate-0a1b2c.d"), "")
	writeFile(t, filepath.Join(debug, "deps", "libmy_crate-0a1b2c.rmeta"), "")
	writeFile(t, filepath.Join(debug, "build", "my-crate-0a1b2c", "build_script_build"), "")
	writeFile(t, filepath.Join(debug, "build", "my-crate-0a1b2c", "build-script-build.exe"), "")

	// Artifacts of real dependencies stay put.
	writeFile(t, filepath.Join(debug, "libserde-9f8e7d.rlib"), "")
	writeFile(t, filepath.Join(debug, "build", "serde-9f8e7d", "build_script_build"), "")

	err := skeleton.RemoveCompiledDummies(librarySkeleton(), root, skeleton.CleanupOptions{})
	require.NoError(t, err)

	require.NoFileExists(t, filepath.Join(debug, "libmy_crate.rlib"))
	require.NoFileExists(t, filepath.Join(debug, "libmy_crate-0a1b2c.d"))
	require.NoFileExists(t, filepath.Join(debug, "deps", "libmy_crate-0a1b2c.rmeta"))
	require.NoFileExists(t, filepath.Join(debug, "build", "my-crate-0a1b2c", "build_script_build"))
	require.NoFileExists(t, filepath.Join(debug, "build", "my-crate-0a1b2c", "build-script-build.exe"))

	require.FileExists(t, filepath.Join(debug, "libserde-9f8e7d.rlib"))
	require.FileExists(t, filepath.Join(debug, "build", "serde-9f8e7d", "build_script_build"))
}

func TestRemoveCompiledDummies_ProfileDirectories(t *testing.T) {
	cases := []struct {
		profile string
		dir     string
	}{
		{"", "debug"},
		{"dev", "debug"},
		{"test", "debug"},
		{"release", "release"},
		{"bench", "release"},
		{"tiny", "tiny"},
	}
	for _, tc := range cases {
		t.Run("profile_"+tc.profile, func(t *testing.T) {
			root := t.TempDir()
			artifact := filepath.Join(root, "target", tc.dir, "libmy_crate.rlib")
			writeFile(t, artifact, "")

			opts := skeleton.CleanupOptions{Profile: tc.profile}
			require.NoError(t, skeleton.RemoveCompiledDummies(librarySkeleton(), root, opts))
			require.NoFileExists(t, artifact)
		})
	}
}

func TestRemoveCompiledDummies_TargetTriples(t *testing.T) {
	root := t.TempDir()
	hostArtifact := filepath.Join(root, "target", "debug", "libmy_crate.rlib")
	tripleArtifact := filepath.Join(root, "target", "x86_64-unknown-linux-musl", "debug", "libmy_crate.rlib")
	writeFile(t, hostArtifact, "")
	writeFile(t, tripleArtifact, "")

	opts := skeleton.CleanupOptions{Targets: []string{"x86_64-unknown-linux-musl"}}
	require.NoError(t, skeleton.RemoveCompiledDummies(librarySkeleton(), root, opts))

	require.NoFileExists(t, tripleArtifact)
	// A cross build never touches the host directory.
	require.FileExists(t, hostArtifact)
}

func TestRemoveCompiledDummies_CustomSpecFile(t *testing.T) {
	root := t.TempDir()
	artifact := filepath.Join(root, "target", "thumbv7em", "release", "libmy_crate.rlib")
	writeFile(t, artifact, "")

	opts := skeleton.CleanupOptions{Profile: "release", Targets: []string{"thumbv7em.json"}}
	require.NoError(t, skeleton.RemoveCompiledDummies(librarySkeleton(), root, opts))
	require.NoFileExists(t, artifact)
}

func TestRemoveCompiledDummies_CustomTargetDir(t *testing.T) {
	root := t.TempDir()
	targetDir := filepath.Join(root, "out")
	artifact := filepath.Join(targetDir, "debug", "libmy_crate.rlib")
	writeFile(t, artifact, "")

	opts := skeleton.CleanupOptions{TargetDir: targetDir}
	require.NoError(t, skeleton.RemoveCompiledDummies(librarySkeleton(), root, opts))
	require.NoFileExists(t, artifact)
}

func TestRemoveCompiledDummies_MissingTargetDir(t *testing.T) {
	err := skeleton.RemoveCompiledDummies(librarySkeleton(), t.TempDir(), skeleton.CleanupOptions{})
	require.NoError(t, err)
}
