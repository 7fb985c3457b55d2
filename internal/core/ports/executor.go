package ports

import "context"

// Executor runs the external package manager against a hydrated skeleton.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute invokes the build tool with the given arguments, with dir as
	// working directory. Stdout and stderr pass through to the caller's
	// streams unmodified; only the exit status is inspected. A non-zero exit
	// is reported as domain.ErrBuildFailed carrying the exit code.
	Execute(ctx context.Context, dir string, args []string) error
}
