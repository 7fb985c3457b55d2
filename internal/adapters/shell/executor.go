// Package shell provides the cargo subprocess adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"github.com/LukeMathWalker/cargo-chef/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
//
// The subprocess's stdout and stderr are passed through unmodified and only
// the exit status is inspected; interpreting build output is not this
// component's business.
type Executor struct {
	// Command is the build tool binary, "cargo" unless overridden in tests.
	Command string

	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates an Executor wired to the process's own streams.
func NewExecutor() *Executor {
	return &Executor{
		Command: "cargo",
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Execute runs the build tool in dir with the given arguments, inheriting the
// caller's environment. A non-zero exit surfaces as domain.ErrBuildFailed
// carrying the exit code verbatim; build failures are deterministic given
// fixed inputs, so nothing is retried.
func (e *Executor) Execute(ctx context.Context, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, e.Command, args...) //nolint:gosec // fixed build tool invocation
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(domain.ErrBuildFailed, "exit_code", exitCode)
		return zerr.With(failed, "command", e.Command)
	}
	return nil
}

var _ ports.Executor = (*Executor)(nil)
