// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"refinspect/internal/clibase"
	"refinspect/internal/cliutil"
	"refinspect/internal/output"
)

// Options holds all refinspect flags and arguments.
type Options struct {
	IndexBase string

	// Output
	Across    int
	NamesOnly bool

	// Misc
	Verbose  bool
	Quiet    bool
	Version  bool
	Examples bool
}

// NewFlagSet returns a FlagSet with ContinueOnError and the refinspect usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		clibase.InspectUsage(out, def)
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the index name.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Across, "across", output.DefaultLineWidth, "number of characters across in FASTA output")
	fs.IntVar(&opt.Across, "a", output.DefaultLineWidth, "alias of --across")
	fs.BoolVar(&opt.NamesOnly, "names", false, "print reference sequence names only")
	fs.BoolVar(&opt.NamesOnly, "n", false, "alias of --names")
	fs.BoolVar(&opt.Verbose, "verbose", false, "verbose output (for debugging)")
	fs.BoolVar(&opt.Verbose, "v", false, "alias of --verbose")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Examples, "examples", false, "show quickstart examples and exit")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Across < 1 {
		return opt, errors.New("-a/--across arg must be at least 1")
	}
	if opt.Verbose && opt.Quiet {
		return opt, fmt.Errorf("--verbose conflicts with --quiet")
	}
	base, err := cliutil.SinglePositional(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.IndexBase = base
	return opt, nil
}
