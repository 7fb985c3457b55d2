// Package main is the entry point for the chef CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LukeMathWalker/cargo-chef/cmd/chef/commands"
	"github.com/LukeMathWalker/cargo-chef/internal/adapters/logger"
	"github.com/LukeMathWalker/cargo-chef/internal/adapters/shell"
	"github.com/LukeMathWalker/cargo-chef/internal/app"
)

func main() {
	if err := run(); err != nil {
		// zerr prints a report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The spawned build subprocess handles interrupts itself; we only stop
	// driving the pipeline.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New()
	application := app.New(log, shell.NewExecutor(), nil)

	return commands.New(application).Execute(ctx)
}
