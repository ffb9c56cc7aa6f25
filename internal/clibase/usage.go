// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"refinspect/internal/version"
)

// UsageCommon installs the shared Usage() handler on fs.
// extra prints tool-specific sections before the option list.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – reference sequence recovery from joined indexes\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}
	}
}

// InspectUsage prints the refinspect synopsis and options.
func InspectUsage(out io.Writer, def func(string) string) {
	fmt.Fprintln(out, "Usage: refinspect [options]* <index_base>")
	fmt.Fprintln(out, "  <index_base>              index filename with or without the trailing .rjx")
	fmt.Fprintln(out, "\nOptions:")
	fmt.Fprintf(out, "  -a, --across int          Number of characters across in FASTA output [%s]\n", def("across"))
	fmt.Fprintf(out, "  -n, --names               Print reference sequence names only [%s]\n", def("names"))
	fmt.Fprintf(out, "  -v, --verbose             Verbose output on stderr (for debugging) [%s]\n", def("verbose"))
	fmt.Fprintf(out, "  -q, --quiet               Suppress non-essential warnings [%s]\n", def("quiet"))
	fmt.Fprintln(out, "      --examples            Show quickstart examples and exit")
	fmt.Fprintln(out, "      --version             Print version and exit")
	fmt.Fprintln(out, "  -h, --help                Show this help and exit")
}
