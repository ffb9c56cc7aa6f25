// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrNoIndex is returned when no index base name was given.
var ErrNoIndex = errors.New("no index name given")

// boolFlags returns names of flags that don't take a value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so that
// options may follow the index name ("refinspect idx -n"). "--" ends flags;
// "-" and "--x=y" are handled like the flag package does.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	isBool := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !isBool[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// SinglePositional returns the only positional argument.
func SinglePositional(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", ErrNoIndex
	case 1:
		return posArgs[0], nil
	default:
		return "", fmt.Errorf("expected one index name, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	}
}
