// Package appshell wires a command's run function to the process: signals,
// standard streams and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is returned when a signal stopped the run.
const ExitInterrupted = 130

// Main runs fn with a context canceled on SIGINT/SIGTERM and exits with its code.
func Main(fn func(ctx context.Context, stdout, stderr io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := fn(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(Normalize(ctx, code))
}

// Normalize turns a canceled run into ExitInterrupted, whatever fn returned.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil {
		return ExitInterrupted
	}
	return code
}
