// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sanath-2024/stan-x-paper-prep/internal/cli"
	"github.com/sanath-2024/stan-x-paper-prep/internal/cmdutil"
	"github.com/sanath-2024/stan-x-paper-prep/internal/coverage"
	"github.com/sanath-2024/stan-x-paper-prep/internal/errs"
	"github.com/sanath-2024/stan-x-paper-prep/internal/sink"
	"github.com/sanath-2024/stan-x-paper-prep/internal/version"
	"github.com/sanath-2024/stan-x-paper-prep/internal/writers"
)

// Name is the program name shown in usage.
const Name = "calculate_stats"

// Exit codes
const (
	ExitOK       = 0
	ExitFailure  = 3
	ExitCLI      = 2
	ExitCanceled = 130
)

// RunContext dispatches argv (without the program name) to a subcommand.
// Reports go to stdout only when the output path is "-"; diagnostics always
// go to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	if len(argv) == 0 {
		cli.PrintUsage(stderr, Name)
		return cliError(stderr, errs.Errorf(errs.CLI, "a subcommand is required"))
	}

	switch argv[0] {
	case "-h", "-help", "--help", "help":
		cli.PrintUsage(outw, Name)
		return flushed(outw, stderr, ExitOK)
	case "-v", "-version", "--version":
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return flushed(outw, stderr, ExitOK)
	case cli.CmdFastCoverage:
		return runFastCoverage(parent, argv[1:], outw, stderr)
	}

	cli.PrintUsage(stderr, Name)
	return cliError(stderr, errs.Errorf(errs.CLI, "unknown subcommand %q", argv[0]))
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func runFastCoverage(ctx context.Context, argv []string, outw *bufio.Writer, stderr io.Writer) int {
	fs := cli.NewFlagSet(cli.CmdFastCoverage)
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.PrintFastCoverageUsage(outw, Name, fs)
			return flushed(outw, stderr, ExitOK)
		}
		cli.PrintFastCoverageUsage(stderr, Name, fs)
		return cliError(stderr, errs.New(errs.CLI, "", "", err))
	}

	log := &cmdutil.Logger{Dst: stderr, Quiet: opts.Quiet, Verbose: opts.Verbose, Debug: opts.Debug}
	log.Dump("options", opts)

	err = coverage.Run(ctx, coverage.Options{
		Reads:     opts.Reads,
		Ref:       opts.Ref,
		Out:       opts.Out,
		Format:    opts.Format,
		Threads:   opts.Threads,
		BatchSize: opts.BatchSize,
		Streams:   sink.Streams{Stdout: outw},
		Log:       log,
	})
	if e := outw.Flush(); err == nil && e != nil {
		err = errs.New(errs.IO, "write", "<stdout>", e)
	}

	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errs.KindOf(err) == errs.CLI:
		return cliError(stderr, err)
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitFailure
}

func cliError(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	return ExitCLI
}

func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitFailure
	}
	return code
}
