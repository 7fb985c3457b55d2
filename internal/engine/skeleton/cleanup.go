package skeleton

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
)

// CleanupOptions locates the profile directory holding compiled artifacts.
type CleanupOptions struct {
	// Profile is the cargo profile the build ran under ("dev", "release",
	// "bench", "test" or a custom profile name).
	Profile string

	// Targets lists the target triples passed to the build, if any.
	Targets []string

	// TargetDir overrides the default <root>/target artifact directory.
	TargetDir string
}

// RemoveCompiledDummies deletes the compilation artifacts produced from
// placeholder library and build-script sources. Leaving them around makes the
// later real build link empty objects instead of recompiling the workspace's
// own crates.
func RemoveCompiledDummies(s *domain.Skeleton, root string, opts CleanupOptions) error {
	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = filepath.Join(root, "target")
	}

	// dev and test artifacts live under debug/, bench under release/;
	// custom profiles keep their own name.
	profileDir := opts.Profile
	switch opts.Profile {
	case "", "dev", "test", "debug":
		profileDir = "debug"
	case "bench", "release":
		profileDir = "release"
	}

	dirs := []string{filepath.Join(targetDir, profileDir)}
	if len(opts.Targets) > 0 {
		dirs = dirs[:0]
		for _, t := range opts.Targets {
			// A custom target spec file `foo.json` produces artifacts
			// under a directory named after the spec, `foo`.
			dirs = append(dirs, filepath.Join(targetDir, strings.TrimSuffix(t, ".json"), profileDir))
		}
	}

	for _, m := range s.Manifests {
		if m.Package == nil {
			continue
		}
		for _, dir := range dirs {
			for _, t := range m.Targets {
				if t.Kind != domain.TargetLib {
					continue
				}
				name := t.Name
				if name == "" {
					name = m.Package.LibName()
				}
				if err := removeLibArtifacts(dir, strings.ReplaceAll(name, "-", "_")); err != nil {
					return err
				}
			}
			if m.HasBuildScript() {
				if err := removeBuildScriptArtifacts(dir, m.Package.Name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// removeLibArtifacts deletes every file or directory below dir whose name
// starts with lib<name>. or lib<name>-.
func removeLibArtifacts(dir, name string) error {
	prefixes := []string{"lib" + name + ".", "lib" + name + "-"}
	return walkRemove(dir, func(base string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(base, p) {
				return true
			}
		}
		return false
	}, true)
}

// removeBuildScriptArtifacts deletes compiled build-script binaries under
// <dir>/build/<pkg>-*/.
func removeBuildScriptArtifacts(dir, pkg string) error {
	buildDir := filepath.Join(dir, "build")
	entries, err := os.ReadDir(buildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return domain.IOError(err, "failed to scan build directory", buildDir)
	}
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), pkg+"-") {
			continue
		}
		err := walkRemove(filepath.Join(buildDir, e.Name()), func(base string) bool {
			return strings.HasPrefix(base, "build_script_build") ||
				strings.HasPrefix(base, "build-script-build")
		}, false)
		if err != nil {
			return err
		}
	}
	return nil
}

// walkRemove walks dir and deletes entries whose base name matches. Matching
// directories are removed wholesale when removeDirs is set.
func walkRemove(dir string, match func(base string) bool, removeDirs bool) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if path == dir || !match(d.Name()) {
			return nil
		}
		if d.IsDir() {
			if !removeDirs {
				return nil
			}
			if err := os.RemoveAll(path); err != nil {
				return err
			}
			return filepath.SkipDir
		}
		return os.Remove(path)
	})
	if err != nil {
		return domain.IOError(err, "failed to clean up placeholder artifacts", dir)
	}
	return nil
}
