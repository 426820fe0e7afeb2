// Package main implements recreate-user-schemes, which regenerates the
// per-user Xcode schemes of a project or workspace from its targets.
//
// The project path comes from the project_path environment variable, else
// the config file, else the compiled-in default. On failure the error, a
// stack trace marker and the stack trace are printed to stdout and the
// process exits 1. A successful run prints nothing to stdout.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/failure"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the root command and returns the process exit code.
// Diagnostics go to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	reporter := failure.NewReporter(stdout)
	defer func() {
		if v := recover(); v != nil {
			code = reporter.ReportPanic(v)
		}
	}()

	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return reporter.Report(cmd.ExecuteContext(ctx))
}
