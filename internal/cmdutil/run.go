package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"refinspect/internal/writers"
)

// Exit codes shared by the commands.
const (
	ExitOK     = 0
	ExitLoad   = 1
	ExitUsage  = 2
	ExitOutput = 3
)

// FlushExit flushes w and returns code, unless flushing fails: a broken pipe
// (downstream closed early) is a clean exit, any other error is ExitOutput.
func FlushExit(w *bufio.Writer, stderr io.Writer, code int) int {
	err := w.Flush()
	switch {
	case writers.IsBrokenPipe(err):
		return ExitOK
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}

// OutputExit maps an error produced while writing results to an exit code.
func OutputExit(err error, stderr io.Writer) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
}
