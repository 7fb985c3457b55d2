// Package fs provides filesystem adapters: manifest discovery and content
// digests.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
)

const manifestName = "Cargo.toml"

// Walker discovers package manifests under a project root.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker. The ignores are directory names or root-relative
// paths that must never be descended into, on top of the built-in exclusions
// (version control metadata and build-output directories).
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// Manifests returns the root-relative paths of every Cargo.toml below root,
// sorted lexicographically.
//
// A directory named "target" whose parent holds a manifest is build output of
// the package manager and is not descended into: manifests found there belong
// to already-built dependencies, not to the project's own workspace.
func (w *Walker) Manifests(root string) ([]string, error) {
	hasManifest := map[string]bool{}
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				// Not fatal: skip entries we are not allowed to read.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if w.skipDir(d.Name(), rel, hasManifest[filepath.Dir(path)]) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == manifestName {
			hasManifest[filepath.Dir(path)] = true
			found = append(found, rel)
		}
		return nil
	})
	if err != nil {
		return nil, domain.IOError(err, "failed to scan project directory", root)
	}

	sort.Strings(found)
	return found, nil
}

func (w *Walker) skipDir(name, rel string, parentHasManifest bool) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	if name == "target" && parentHasManifest {
		return true
	}
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
		if matched, _ := filepath.Match(ignore, rel); matched {
			return true
		}
	}
	return false
}

// ReadOptional reads a file and returns nil bytes when it does not exist.
// Any other failure is surfaced with the offending path.
func ReadOptional(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.IOError(err, "failed to read file", path)
	}
	return data, nil
}
