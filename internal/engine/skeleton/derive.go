// Package skeleton implements the recipe engine pipeline: deriving a skeleton
// from a real project, hydrating it into a throwaway build input, and cleaning
// the placeholder artifacts up after the dependency build.
package skeleton

import (
	"os"
	"path/filepath"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/fs"
	"github.com/LukeMathWalker/cargo-chef/internal/adapters/manifest"
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"go.trai.ch/zerr"
)

// DeriveOptions configures skeleton derivation.
type DeriveOptions struct {
	// Member scopes the workspace to a single named member; empty means the
	// whole workspace.
	Member string

	// Ignore lists extra directory names or root-relative paths excluded
	// from discovery.
	Ignore []string
}

// Derive walks the project at root and reduces it to the minimal model
// sufficient to trigger a dependency-only build: every manifest parsed and
// normalized, the lockfile carried verbatim, members resolved.
func Derive(root string, opts DeriveOptions) (*domain.Skeleton, error) {
	configFile, err := fs.ReadOptional(filepath.Join(root, ".cargo", "config.toml"))
	if err != nil {
		return nil, err
	}

	ignores := append([]string(nil), opts.Ignore...)
	if vendored := manifest.VendoredDir(configFile); vendored != "" {
		ignores = append(ignores, vendored)
	}

	walker := fs.NewWalker(ignores...)
	paths, err := walker.Manifests(root)
	if err != nil {
		return nil, err
	}
	if !containsRoot(paths) {
		return nil, zerr.With(domain.ErrManifestNotFound, "root", root)
	}

	files := make([]*manifest.File, 0, len(paths))
	for _, rel := range paths {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		data, err := os.ReadFile(abs) //nolint:gosec // path was produced by the walker
		if err != nil {
			return nil, domain.IOError(err, "failed to read manifest", rel)
		}
		f, err := manifest.Parse(data, rel)
		if err != nil {
			return nil, err
		}
		if err := f.Normalize(manifest.ProbeLayout(filepath.Dir(abs))); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	var memberDir string
	if opts.Member != "" {
		memberDir, err = manifest.ScopeToMember(files, opts.Member)
		if err != nil {
			return nil, err
		}
	}

	s := &domain.Skeleton{
		ConfigFile: configFile,
		Members:    manifest.WorkspaceMembers(files),
	}
	// Scoping narrows the member list along with the root members array.
	if memberDir != "" && len(s.Members) > 0 {
		s.Members = []string{memberDir}
	}
	for _, f := range files {
		m, err := f.Manifest()
		if err != nil {
			return nil, err
		}
		s.Manifests = append(s.Manifests, m)
	}

	s.LockFile, err = fs.ReadOptional(filepath.Join(root, "Cargo.lock"))
	if err != nil {
		return nil, err
	}
	s.Toolchain, err = readToolchain(root)
	if err != nil {
		return nil, err
	}

	s.Sort()
	return s, nil
}

func containsRoot(paths []string) bool {
	for _, p := range paths {
		if p == "Cargo.toml" {
			return true
		}
	}
	return false
}

func readToolchain(root string) (*domain.ToolchainFile, error) {
	if data, err := fs.ReadOptional(filepath.Join(root, "rust-toolchain.toml")); err != nil {
		return nil, err
	} else if data != nil {
		return &domain.ToolchainFile{Kind: domain.ToolchainTOML, Content: string(data)}, nil
	}
	if data, err := fs.ReadOptional(filepath.Join(root, "rust-toolchain")); err != nil {
		return nil, err
	} else if data != nil {
		return &domain.ToolchainFile{Kind: domain.ToolchainBare, Content: string(data)}, nil
	}
	return nil, nil
}
