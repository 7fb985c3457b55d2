package skeleton

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Hydrate materializes the skeleton below root: every manifest at its
// original relative path, a placeholder source file for every declared
// target, and the lockfile, config and toolchain files verbatim.
//
// Existing files at those paths are overwritten without confirmation: the
// output directory is assumed to be disposable. Running this against a
// populated source tree is a documented misuse, not a guarded-against case.
func Hydrate(ctx context.Context, s *domain.Skeleton, root string, noStd bool) error {
	if s.LockFile != nil {
		if err := writeFile(filepath.Join(root, "Cargo.lock"), s.LockFile); err != nil {
			return err
		}
	}
	if s.ConfigFile != nil {
		if err := writeFile(filepath.Join(root, ".cargo", "config.toml"), s.ConfigFile); err != nil {
			return err
		}
	}
	if s.Toolchain != nil {
		if err := writeFile(filepath.Join(root, s.Toolchain.FileName()), []byte(s.Toolchain.Content)); err != nil {
			return err
		}
	}

	// Manifests first, in their sorted order.
	for _, m := range s.Manifests {
		path := filepath.Join(root, filepath.FromSlash(m.RelativePath))
		if err := writeFile(path, []byte(m.Contents)); err != nil {
			return err
		}
	}

	// Placeholder entry points have no data dependency on one another, so
	// they are written concurrently. Pure optimization, see the manifest
	// loop above for the order-sensitive part.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, m := range s.Manifests {
		dir := filepath.Dir(filepath.Join(root, filepath.FromSlash(m.RelativePath)))
		for _, t := range m.Targets {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, filepath.FromSlash(t.Path))
				return writeFile(path, []byte(t.EntryPoint(noStd)))
			})
		}
	}
	return g.Wait()
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return domain.IOError(err, "failed to create directory", filepath.Dir(path))
	}
	//nolint:gosec // skeleton files are world-readable by design
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return domain.IOError(err, "failed to write file", path)
	}
	return nil
}
