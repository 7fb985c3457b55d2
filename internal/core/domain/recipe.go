package domain

import "go.trai.ch/zerr"

// RecipeVersion is the format marker written into every recipe artifact.
// Readers reject any other value, see ErrRecipeFormat.
const RecipeVersion = "v1"

// ManifestMetadata is the serialized form of one normalized manifest.
type ManifestMetadata struct {
	Contents string   `json:"contents"`
	Package  *Package `json:"package,omitempty"`
	Targets  []Target `json:"targets"`
}

// Recipe is the serialized form of a Skeleton. It is the one artifact
// exchanged between prepare and cook, possibly across machines, and its
// byte representation must be stable for a logically unchanged skeleton.
type Recipe struct {
	Version          string                      `json:"version"`
	Metadata         map[string]ManifestMetadata `json:"metadata"`
	LockContent      string                      `json:"lock_content,omitempty"`
	ConfigContent    string                      `json:"config_content,omitempty"`
	Toolchain        *ToolchainFile              `json:"toolchain,omitempty"`
	WorkspaceMembers []string                    `json:"workspace_members"`
}

// NewRecipe converts a derived skeleton into its serialized form.
func NewRecipe(s *Skeleton) *Recipe {
	metadata := make(map[string]ManifestMetadata, len(s.Manifests))
	for _, m := range s.Manifests {
		metadata[m.RelativePath] = ManifestMetadata{
			Contents: m.Contents,
			Package:  m.Package,
			Targets:  m.Targets,
		}
	}
	members := make([]string, len(s.Members))
	copy(members, s.Members)
	return &Recipe{
		Version:          RecipeVersion,
		Metadata:         metadata,
		LockContent:      string(s.LockFile),
		ConfigContent:    string(s.ConfigFile),
		Toolchain:        s.Toolchain,
		WorkspaceMembers: members,
	}
}

// Skeleton reconstructs the in-memory model from a deserialized recipe.
// The reconstruction is pure: manifest contents are carried verbatim, so a
// re-serialized skeleton yields byte-identical recipe output.
func (r *Recipe) Skeleton() (*Skeleton, error) {
	if r.Version != RecipeVersion {
		err := zerr.With(ErrRecipeFormat, "found", r.Version)
		return nil, zerr.With(err, "supported", RecipeVersion)
	}
	s := &Skeleton{
		Toolchain: r.Toolchain,
		Members:   append([]string(nil), r.WorkspaceMembers...),
	}
	if r.LockContent != "" {
		s.LockFile = []byte(r.LockContent)
	}
	if r.ConfigContent != "" {
		s.ConfigFile = []byte(r.ConfigContent)
	}
	for path, meta := range r.Metadata {
		s.Manifests = append(s.Manifests, Manifest{
			RelativePath: path,
			Contents:     meta.Contents,
			Package:      meta.Package,
			Targets:      meta.Targets,
		})
	}
	s.Sort()
	return s, nil
}
