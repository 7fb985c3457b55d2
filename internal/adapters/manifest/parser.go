// Package manifest parses, normalizes and re-serializes Cargo.toml documents.
//
// Documents are handled through go-toml's Tree and mutated by explicit key
// insertion. Serialization emits keys in go-toml's alphabetical normal form:
// the input's key order is not kept, but every run produces the same normal
// form, so a logically unchanged manifest always yields identical bytes.
package manifest

import (
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	toml "github.com/pelletier/go-toml"
	"go.trai.ch/zerr"
)

// File is one manifest in flight between parsing and serialization.
type File struct {
	// RelativePath is the manifest path from the project root.
	RelativePath string

	// Tree is the parsed document.
	Tree *toml.Tree

	// Package is nil for virtual workspace manifests.
	Package *domain.Package

	// Targets is the complete normalized target set, populated by Normalize.
	Targets []domain.Target
}

// Parse reads a manifest document. The relative path is attached to parse
// failures so a malformed manifest can be located without a debugger.
func Parse(data []byte, relativePath string) (*File, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		parseErr := zerr.With(domain.ErrManifestParse, "path", relativePath)
		return nil, zerr.With(parseErr, "detail", err.Error())
	}
	return &File{
		RelativePath: relativePath,
		Tree:         tree,
		Package:      packageOf(tree),
	}, nil
}

// Serialize renders the document back to TOML text in the serializer's
// alphabetical normal form. The output is deterministic, not a byte-level
// copy of the input.
func (f *File) Serialize() (string, error) {
	out, err := f.Tree.ToTomlString()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to serialize manifest"), "path", f.RelativePath)
	}
	return out, nil
}

// Manifest converts the file into its domain representation.
func (f *File) Manifest() (domain.Manifest, error) {
	contents, err := f.Serialize()
	if err != nil {
		return domain.Manifest{}, err
	}
	return domain.Manifest{
		RelativePath: f.RelativePath,
		Contents:     contents,
		Package:      f.Package,
		Targets:      f.Targets,
	}, nil
}

// packageOf extracts the package identity, when present.
func packageOf(tree *toml.Tree) *domain.Package {
	pkg, ok := tree.Get("package").(*toml.Tree)
	if !ok {
		return nil
	}
	name := stringKey(pkg, "name")
	if name == "" {
		return nil
	}
	return &domain.Package{
		Name:    name,
		Version: stringKey(pkg, "version"),
		Edition: stringKey(pkg, "edition"),
	}
}

// stringKey returns the string at key, or "" when absent or of another type
// (e.g. a workspace-inheritance table).
func stringKey(tree *toml.Tree, key string) string {
	v, _ := tree.Get(key).(string)
	return v
}

// boolKey returns the bool at key, or the fallback when absent.
func boolKey(tree *toml.Tree, key string, fallback bool) bool {
	if v, ok := tree.Get(key).(bool); ok {
		return v
	}
	return fallback
}
