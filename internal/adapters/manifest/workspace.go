package manifest

import (
	"path"
	"sort"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	toml "github.com/pelletier/go-toml"
	"go.trai.ch/zerr"
)

// WorkspaceMembers computes the workspace member directories, relative to the
// project root and lexicographically sorted. A project whose root manifest
// carries no [workspace] table has no members.
func WorkspaceMembers(files []*File) []string {
	root := fileAt(files, "Cargo.toml")
	if root == nil {
		return nil
	}
	if _, ok := root.Tree.Get("workspace").(*toml.Tree); !ok {
		return nil
	}

	var members []string
	for _, f := range files {
		if f.Package == nil {
			continue
		}
		members = append(members, path.Dir(f.RelativePath))
	}
	sort.Strings(members)
	return members
}

// ScopeToMember narrows a workspace build to one member: the root manifest's
// members array is rewritten to just that member's directory, and
// default-members is dropped because it does not play nicely with a modified
// members list. Returns the member's directory relative to the project root.
func ScopeToMember(files []*File, member string) (string, error) {
	var dir string
	for _, f := range files {
		if f.Package != nil && f.Package.Name == member {
			dir = path.Dir(f.RelativePath)
			break
		}
	}
	if dir == "" {
		return "", zerr.With(domain.ErrMemberNotFound, "member", member)
	}

	root := fileAt(files, "Cargo.toml")
	if root == nil {
		return "", zerr.With(domain.ErrMemberNotFound, "member", member)
	}
	workspace, ok := root.Tree.Get("workspace").(*toml.Tree)
	if !ok {
		return dir, nil
	}
	if workspace.Get("members") != nil {
		workspace.Set("members", []interface{}{dir})
	}
	if workspace.Get("default-members") != nil {
		if err := workspace.Delete("default-members"); err != nil {
			return "", zerr.Wrap(err, "failed to drop default-members")
		}
	}
	return dir, nil
}

// VendoredDir extracts the vendored-sources directory configured through the
// crates-io replace-with indirection in .cargo/config.toml, or "" when the
// project does not vendor its dependencies. Discovery must not descend into
// this directory: its manifests belong to fetched dependencies.
func VendoredDir(config []byte) string {
	if len(config) == 0 {
		return ""
	}
	tree, err := toml.LoadBytes(config)
	if err != nil {
		return ""
	}
	replaceWith, ok := tree.GetPath([]string{"source", "crates-io", "replace-with"}).(string)
	if !ok {
		return ""
	}
	dir, _ := tree.GetPath([]string{"source", replaceWith, "directory"}).(string)
	return dir
}

func fileAt(files []*File, relativePath string) *File {
	for _, f := range files {
		if f.RelativePath == relativePath {
			return f
		}
	}
	return nil
}
