// Package appshell is the signal-aware process entry shared by the binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"revcomp/internal/cmdutil"
)

// Main runs run with a context canceled on SIGINT/SIGTERM and exits with
// its status.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}

	stop()
	os.Exit(code)
}
