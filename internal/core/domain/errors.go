package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the root Cargo.toml cannot be located.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrManifestParse is returned when a discovered manifest is not valid TOML.
	ErrManifestParse = zerr.New("manifest parse error")

	// ErrRecipeFormat is returned when a recipe artifact is unreadable or was
	// written by an incompatible format version.
	ErrRecipeFormat = zerr.New("incompatible recipe format")

	// ErrBuildFailed is returned when the delegated cargo build exits non-zero.
	ErrBuildFailed = zerr.New("dependency build failed")

	// ErrMemberNotFound is returned when --member names a package that is not
	// part of the workspace.
	ErrMemberNotFound = zerr.New("workspace member not found")

	// ErrIO is returned when reading project files or writing skeleton and
	// recipe files fails at the filesystem level.
	ErrIO = zerr.New("io error")
)

// IOError wraps a filesystem failure with the ErrIO sentinel, the offending
// path and the underlying cause.
func IOError(err error, msg, path string) error {
	wrapped := zerr.With(zerr.Wrap(ErrIO, msg), "path", path)
	return zerr.With(wrapped, "detail", err.Error())
}
