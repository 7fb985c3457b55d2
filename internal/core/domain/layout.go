package domain

import (
	"path"
	"sort"
	"strings"
)

// Layout captures the conventional source layout found next to a manifest.
// It is probed from the filesystem exactly once, at prepare time; all target
// inference afterwards is a pure function of this snapshot.
type Layout struct {
	// HasLib reports a file at the canonical library path src/lib.rs.
	HasLib bool

	// HasMain reports a file at the canonical binary path src/main.rs.
	HasMain bool

	// Bins, Examples, Tests and Benches list candidate entry-point paths
	// (manifest-relative) under the conventional directories: direct
	// <name>.rs files and nested <name>/main.rs files.
	Bins     []string
	Examples []string
	Tests    []string
	Benches  []string

	// HasBuildScript reports a build.rs adjacent to the manifest.
	HasBuildScript bool
}

// Conventions records which convention-based discoveries the manifest leaves
// enabled (autobins and friends, plus automatic build script detection).
type Conventions struct {
	Bins        bool
	Examples    bool
	Tests       bool
	Benches     bool
	BuildScript bool
}

// AllConventions enables every convention, matching a manifest that sets none
// of the auto* keys.
func AllConventions() Conventions {
	return Conventions{Bins: true, Examples: true, Tests: true, Benches: true, BuildScript: true}
}

// TargetNameFromPath derives a target name from its conventional source path:
// the file stem, or the enclosing directory name for <dir>/main.rs layouts.
func TargetNameFromPath(p string) string {
	base := path.Base(p)
	stem := strings.TrimSuffix(base, ".rs")
	if stem == "main" {
		if dir := path.Base(path.Dir(p)); dir != "." && dir != "src" {
			return dir
		}
	}
	return stem
}

// InferTargets resolves the complete, ordered target set of one manifest:
// explicitly declared targets first, then every target the build tool would
// discover by convention from the given layout snapshot.
//
// Declared targets are never duplicated: a conventional candidate is dropped
// when a target of the same kind already claims its name or its source path.
// Conventional candidates of one kind are emitted sorted by path. A nil
// pkg (virtual workspace manifest) yields only the declared targets.
func InferTargets(pkg *Package, layout Layout, declared []Target, conv Conventions) []Target {
	var out []Target

	takenName := make(map[string]bool)
	takenPath := make(map[string]bool)
	add := func(t Target) {
		key := string(t.Kind) + "\x00"
		if takenName[key+t.Name] || takenPath[key+t.Path] {
			return
		}
		takenName[key+t.Name] = true
		takenPath[key+t.Path] = true
		out = append(out, t)
	}

	byKind := func(kind TargetKind) []Target {
		var ts []Target
		for _, t := range declared {
			if t.Kind == kind {
				ts = append(ts, t)
			}
		}
		return ts
	}
	conventional := func(kind TargetKind, paths []string) {
		sorted := append([]string(nil), paths...)
		sort.Strings(sorted)
		for _, p := range sorted {
			add(Target{Kind: kind, Name: TargetNameFromPath(p), Path: p, Harness: true})
		}
	}

	// Library: at most one, explicit declaration wins.
	if libs := byKind(TargetLib); len(libs) > 0 {
		lib := libs[0]
		if lib.Path == "" {
			lib.Path = "src/lib.rs"
		}
		if lib.Name == "" && pkg != nil {
			lib.Name = pkg.LibName()
		}
		add(lib)
	} else if layout.HasLib && pkg != nil {
		add(Target{Kind: TargetLib, Name: pkg.LibName(), Path: "src/lib.rs", Harness: true})
	}

	// Binaries: declared entries first, then src/main.rs, then src/bin.
	for _, bin := range byKind(TargetBin) {
		if bin.Path == "" {
			bin.Path = defaultBinPath(bin.Name, pkg, layout)
		}
		add(bin)
	}
	if pkg != nil && conv.Bins {
		if layout.HasMain {
			add(Target{Kind: TargetBin, Name: pkg.Name, Path: "src/main.rs", Harness: true})
		}
		conventional(TargetBin, layout.Bins)
	}

	for _, t := range byKind(TargetExample) {
		if t.Path == "" {
			t.Path = "examples/" + t.Name + ".rs"
		}
		add(t)
	}
	if pkg != nil && conv.Examples {
		conventional(TargetExample, layout.Examples)
	}

	for _, t := range byKind(TargetTest) {
		if t.Path == "" {
			t.Path = "tests/" + t.Name + ".rs"
		}
		add(t)
	}
	if pkg != nil && conv.Tests {
		conventional(TargetTest, layout.Tests)
	}

	for _, t := range byKind(TargetBench) {
		if t.Path == "" {
			t.Path = "benches/" + t.Name + ".rs"
		}
		add(t)
	}
	if pkg != nil && conv.Benches {
		conventional(TargetBench, layout.Benches)
	}

	// Build script: an explicit package.build path wins over the build.rs
	// convention; package.build = false disables detection entirely.
	if scripts := byKind(TargetBuildScript); len(scripts) > 0 {
		add(scripts[0])
	} else if pkg != nil && conv.BuildScript && layout.HasBuildScript {
		add(Target{Kind: TargetBuildScript, Name: "build-script-build", Path: "build.rs"})
	}

	return out
}

// defaultBinPath resolves the source path of a declared binary that relies on
// path inference: its conventional file under src/bin if the layout has one,
// otherwise src/main.rs when the name matches the package.
func defaultBinPath(name string, pkg *Package, layout Layout) string {
	for _, p := range layout.Bins {
		if TargetNameFromPath(p) == name {
			return p
		}
	}
	if pkg != nil && name == pkg.Name && layout.HasMain {
		return "src/main.rs"
	}
	return "src/bin/" + name + ".rs"
}
