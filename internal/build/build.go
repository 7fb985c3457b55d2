// Package build holds build-time information about the chef binary itself.
package build

// Version is the tool version reported by `chef version`.
// It defaults to "dev" and is overwritten by linker flags on release builds.
var Version = "dev"
