package shell_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/LukeMathWalker/cargo-chef/internal/adapters/shell"
	"github.com/LukeMathWalker/cargo-chef/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExecute_Success(t *testing.T) {
	e := shell.NewExecutor()
	e.Command = "true"

	if err := e.Execute(context.Background(), t.TempDir(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecute_NonZeroExitSurfacesCode(t *testing.T) {
	e := shell.NewExecutor()
	e.Command = "sh"

	err := e.Execute(context.Background(), t.TempDir(), []string{"-c", "exit 7"})
	if !errors.Is(err, domain.ErrBuildFailed) {
		t.Fatalf("expected ErrBuildFailed, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if code, ok := zErr.Metadata()["exit_code"].(int); !ok || code != 7 {
		t.Errorf("expected exit_code=7 in metadata, got %v", zErr.Metadata()["exit_code"])
	}
}

func TestExecute_StreamsPassThrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := shell.NewExecutor()
	e.Command = "sh"
	e.Stdout = &stdout
	e.Stderr = &stderr

	err := e.Execute(context.Background(), t.TempDir(), []string{"-c", "echo out; echo err >&2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "out\n" {
		t.Errorf("expected stdout passed through, got %q", stdout.String())
	}
	if stderr.String() != "err\n" {
		t.Errorf("expected stderr passed through, got %q", stderr.String())
	}
}
