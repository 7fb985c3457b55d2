package manifest

import (
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	toml "github.com/pelletier/go-toml"
	"go.trai.ch/zerr"
)

// Normalize resolves the complete target set of the manifest against the
// probed layout and materializes every target into the document with an
// explicit source path. After this, hydration needs no filesystem-convention
// knowledge: the document itself names everything the build would compile.
//
// Targets that were already explicitly declared keep their entry (and any
// extra keys on it) untouched; only a missing path is pinned.
func (f *File) Normalize(layout domain.Layout) error {
	declared, conventions := f.declaredTargets()
	f.Targets = domain.InferTargets(f.Package, layout, declared, conventions)
	return f.materialize(declared)
}

// declaredTargets extracts every explicitly declared target from the document
// along with the convention toggles (autobins and friends, package.build).
func (f *File) declaredTargets() ([]domain.Target, domain.Conventions) {
	conventions := domain.AllConventions()
	var declared []domain.Target

	if lib, ok := f.Tree.Get("lib").(*toml.Tree); ok {
		declared = append(declared, domain.Target{
			Kind:      domain.TargetLib,
			Name:      stringKey(lib, "name"),
			Path:      stringKey(lib, "path"),
			Harness:   boolKey(lib, "harness", true),
			ProcMacro: boolKey(lib, "proc-macro", false) || boolKey(lib, "proc_macro", false),
		})
	}

	kinds := []struct {
		key  string
		kind domain.TargetKind
	}{
		{"bin", domain.TargetBin},
		{"example", domain.TargetExample},
		{"test", domain.TargetTest},
		{"bench", domain.TargetBench},
	}
	for _, k := range kinds {
		for _, entry := range tableArray(f.Tree, k.key) {
			declared = append(declared, domain.Target{
				Kind:    k.kind,
				Name:    stringKey(entry, "name"),
				Path:    stringKey(entry, "path"),
				Harness: boolKey(entry, "harness", true),
			})
		}
	}

	if pkg, ok := f.Tree.Get("package").(*toml.Tree); ok {
		conventions.Bins = boolKey(pkg, "autobins", true)
		conventions.Examples = boolKey(pkg, "autoexamples", true)
		conventions.Tests = boolKey(pkg, "autotests", true)
		conventions.Benches = boolKey(pkg, "autobenches", true)

		switch build := pkg.Get("build").(type) {
		case string:
			declared = append(declared, domain.Target{
				Kind: domain.TargetBuildScript,
				Name: "build-script-build",
				Path: build,
			})
		case bool:
			if !build {
				conventions.BuildScript = false
			}
		}
	}

	return declared, conventions
}

// materialize writes the resolved target set back into the document.
func (f *File) materialize(declared []domain.Target) error {
	declaredNames := make(map[string]bool, len(declared))
	for _, t := range declared {
		declaredNames[string(t.Kind)+"\x00"+t.Name] = true
	}
	isDeclared := func(t domain.Target) bool {
		return declaredNames[string(t.Kind)+"\x00"+t.Name]
	}

	if lib := f.target(domain.TargetLib); lib != nil {
		if err := f.materializeLib(*lib); err != nil {
			return err
		}
	}

	for _, k := range []struct {
		key  string
		kind domain.TargetKind
	}{
		{"bin", domain.TargetBin},
		{"example", domain.TargetExample},
		{"test", domain.TargetTest},
		{"bench", domain.TargetBench},
	} {
		if err := f.materializeArray(k.key, k.kind, isDeclared); err != nil {
			return err
		}
	}

	if script := f.target(domain.TargetBuildScript); script != nil {
		if pkg, ok := f.Tree.Get("package").(*toml.Tree); ok && pkg.Get("build") == nil {
			pkg.Set("build", script.Path)
		}
	}
	return nil
}

func (f *File) materializeLib(lib domain.Target) error {
	existing, ok := f.Tree.Get("lib").(*toml.Tree)
	if !ok {
		entry, err := targetTree(lib)
		if err != nil {
			return err
		}
		f.Tree.Set("lib", entry)
		return nil
	}
	if existing.Get("name") == nil {
		existing.Set("name", lib.Name)
	}
	if existing.Get("path") == nil {
		existing.Set("path", lib.Path)
	}
	return nil
}

// materializeArray pins paths on declared entries of one target kind and
// appends one entry per convention-discovered target, in target order.
func (f *File) materializeArray(key string, kind domain.TargetKind, isDeclared func(domain.Target) bool) error {
	targets := f.targets(kind)
	if len(targets) == 0 {
		return nil
	}

	entries := tableArray(f.Tree, key)
	for _, entry := range entries {
		if entry.Get("path") != nil {
			continue
		}
		name := stringKey(entry, "name")
		for _, t := range targets {
			if t.Name == name {
				entry.Set("path", t.Path)
				break
			}
		}
	}

	appended := false
	for _, t := range targets {
		if isDeclared(t) {
			continue
		}
		entry, err := targetTree(t)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		appended = true
	}
	if appended {
		f.Tree.Set(key, entries)
	}
	return nil
}

func targetTree(t domain.Target) (*toml.Tree, error) {
	fields := map[string]interface{}{
		"name": t.Name,
		"path": t.Path,
	}
	if t.ProcMacro {
		fields["proc-macro"] = true
	}
	entry, err := toml.TreeFromMap(fields)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build target entry")
	}
	return entry, nil
}

// target returns the first resolved target of the given kind, or nil.
func (f *File) target(kind domain.TargetKind) *domain.Target {
	for i := range f.Targets {
		if f.Targets[i].Kind == kind {
			return &f.Targets[i]
		}
	}
	return nil
}

// targets returns all resolved targets of the given kind.
func (f *File) targets(kind domain.TargetKind) []domain.Target {
	var out []domain.Target
	for _, t := range f.Targets {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// tableArray reads an array-of-tables value, tolerating its absence.
func tableArray(tree *toml.Tree, key string) []*toml.Tree {
	switch v := tree.Get(key).(type) {
	case []*toml.Tree:
		return v
	default:
		return nil
	}
}
