// Package ports declares the interfaces the core domain depends on and the
// adapters package implements.
package ports

import "context"

//go:generate mockgen -source=process.go -destination=../../adapters/process/mocks/process_mock.go -package=mocks

// Process wraps a single shell-spawned child and its captured output.
type Process interface {
	// Exec runs command through "/bin/sh -c" and blocks until it exits.
	// It returns the process's exit code; a non-nil error means the process
	// never produced a valid exit code (spawn failure or abnormal termination).
	Exec(ctx context.Context, command string) (int, error)

	// Kill sends SIGKILL to the process group Exec spawned. It is a no-op if
	// Exec has not been called or has already returned.
	Kill()

	// OutBuffer returns everything captured from the child's stdout.
	OutBuffer() []byte

	// ErrBuffer returns everything captured from the child's stderr.
	ErrBuffer() []byte
}

// ProcessFactory creates a fresh Process for each Command task. A factory,
// rather than a bare constructor function, lets tests substitute a fake
// implementation without touching the real shell.
type ProcessFactory interface {
	New() Process
}
