// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	log "github.com/sirupsen/logrus"

	"refinspect/internal/cli"
	"refinspect/internal/clibase"
	"refinspect/internal/cmdutil"
	"refinspect/internal/joined"
	"refinspect/internal/output"
	"refinspect/internal/version"
	"refinspect/internal/writers"
)

// RunContext is the refinspect entry point. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("refinspect")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return cmdutil.FlushExit(outw, stderr, cmdutil.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, "refinspect", clibase.InspectExamples)
			return cmdutil.FlushExit(outw, stderr, cmdutil.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return cmdutil.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "refinspect version %s\n", version.Version)
		_, _ = fmt.Fprintf(outw, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return cmdutil.FlushExit(outw, stderr, cmdutil.ExitOK)
	}

	logger := cmdutil.NewLogger(stderr, opts.Verbose, opts.Quiet)
	logger.WithField("index", opts.IndexBase).Debug("input index")

	ix, path, err := joined.Load(opts.IndexBase)
	if err != nil {
		logger.WithError(err).Error("cannot load index")
		return cmdutil.ExitLoad
	}
	logger.WithFields(log.Fields{
		"path":       path,
		"id":         ix.ID(),
		"built":      ix.Created(),
		"references": ix.RefCount() - 1,
		"joined_len": ix.JoinedLen(),
		"byte_order": "little-endian",
	}).Debug("index loaded")
	if ix.RefCount() == 0 || ix.RefName(ix.RefCount()-1) != joined.Sentinel {
		cmdutil.Warnf(logger, opts.Quiet, "catalog of %s does not end with the sentinel entry", path)
	}

	format := output.FormatFASTA
	if opts.NamesOnly {
		format = output.FormatNames
	}
	if err := writers.Write(parent, format, outw, ix, writers.Params{LineWidth: opts.Across}); err != nil {
		if errors.Is(err, context.Canceled) {
			_ = outw.Flush()
			logger.Warn("interrupted")
			return cmdutil.ExitOutput
		}
		return cmdutil.OutputExit(err, stderr)
	}
	return cmdutil.FlushExit(outw, stderr, cmdutil.ExitOK)
}

// Run calls RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
