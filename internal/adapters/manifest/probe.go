package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
)

// ProbeLayout snapshots the conventional source layout of the directory
// holding a manifest. This runs exactly once, at prepare time: the snapshot
// is all the hydrate-time code ever sees, so every target the build would
// discover by convention must be captured here.
func ProbeLayout(dir string) domain.Layout {
	layout := domain.Layout{
		HasLib:         fileExists(filepath.Join(dir, "src", "lib.rs")),
		HasMain:        fileExists(filepath.Join(dir, "src", "main.rs")),
		HasBuildScript: fileExists(filepath.Join(dir, "build.rs")),
	}
	layout.Bins = entryPoints(filepath.Join(dir, "src", "bin"), "src/bin")
	layout.Examples = entryPoints(filepath.Join(dir, "examples"), "examples")
	layout.Tests = entryPoints(filepath.Join(dir, "tests"), "tests")
	layout.Benches = entryPoints(filepath.Join(dir, "benches"), "benches")
	return layout
}

// entryPoints lists candidate entry points under one conventional directory:
// direct <name>.rs files plus <name>/main.rs subdirectories. The returned
// paths are manifest-relative with forward slashes. A missing or empty
// directory yields nothing, which is a normal outcome.
func entryPoints(dir, prefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			if fileExists(filepath.Join(dir, e.Name(), "main.rs")) {
				out = append(out, prefix+"/"+e.Name()+"/main.rs")
			}
			continue
		}
		if strings.HasSuffix(e.Name(), ".rs") {
			out = append(out, prefix+"/"+e.Name())
		}
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
