// Package domain holds the core model of the recipe engine: the Skeleton
// derived from a real project, its manifests and targets, and the serialized
// Recipe form exchanged between prepare and cook.
package domain

import "sort"

// Package is the identity of a single crate.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Edition string `json:"edition,omitempty"`
}

// LibName returns the library crate name: the package name with dashes
// replaced by underscores.
func (p Package) LibName() string {
	out := make([]byte, len(p.Name))
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] == '-' {
			out[i] = '_'
		} else {
			out[i] = p.Name[i]
		}
	}
	return string(out)
}

// ToolchainKind distinguishes the two accepted toolchain file flavours.
type ToolchainKind string

const (
	ToolchainBare ToolchainKind = "bare" // rust-toolchain
	ToolchainTOML ToolchainKind = "toml" // rust-toolchain.toml
)

// ToolchainFile carries a project's toolchain pin verbatim.
type ToolchainFile struct {
	Kind    ToolchainKind `json:"kind"`
	Content string        `json:"content"`
}

// FileName returns the on-disk name for the toolchain file.
func (f ToolchainFile) FileName() string {
	if f.Kind == ToolchainTOML {
		return "rust-toolchain.toml"
	}
	return "rust-toolchain"
}

// Manifest is one package or workspace descriptor, normalized so that every
// target the real build would compile is explicitly declared.
type Manifest struct {
	// RelativePath is the manifest path from the project root; unique key.
	RelativePath string

	// Contents is the normalized manifest serialized back to TOML.
	Contents string

	// Package is nil for virtual workspace manifests.
	Package *Package

	// Targets lists every compilable unit, explicit and materialized alike.
	Targets []Target
}

// HasBuildScript reports whether a placeholder build script must be generated.
func (m *Manifest) HasBuildScript() bool {
	for _, t := range m.Targets {
		if t.Kind == TargetBuildScript {
			return true
		}
	}
	return false
}

// Skeleton is the minimal representation of a project sufficient to trigger a
// dependency-only build without any application source present.
//
// The skeleton exclusively owns its manifests and the verbatim file contents;
// inter-package dependencies stay path strings inside each manifest document,
// never live references.
type Skeleton struct {
	// Manifests sorted lexicographically by RelativePath. The order is a
	// correctness requirement: unstable ordering would change the serialized
	// recipe bytes on every run and invalidate the downstream build cache.
	Manifests []Manifest

	// LockFile is the verbatim Cargo.lock, nil when the project has none.
	LockFile []byte

	// ConfigFile is the verbatim .cargo/config.toml, nil when absent.
	ConfigFile []byte

	// Toolchain is the verbatim rust-toolchain(.toml), nil when absent.
	Toolchain *ToolchainFile

	// Members lists workspace member directories relative to the project
	// root, lexicographically sorted. Empty for single-package projects.
	Members []string
}

// Sort orders manifests by relative path and members lexicographically.
func (s *Skeleton) Sort() {
	sort.Slice(s.Manifests, func(i, j int) bool {
		return s.Manifests[i].RelativePath < s.Manifests[j].RelativePath
	})
	sort.Strings(s.Members)
}

// Manifest returns the manifest at the given relative path, or nil.
func (s *Skeleton) Manifest(relativePath string) *Manifest {
	for i := range s.Manifests {
		if s.Manifests[i].RelativePath == relativePath {
			return &s.Manifests[i]
		}
	}
	return nil
}
