// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger returns a logger on dst (normally stderr; stdout carries data).
// verbose enables debug output, quiet keeps errors only.
func NewLogger(dst io.Writer, verbose, quiet bool) *log.Logger {
	l := log.New()
	l.SetOutput(dst)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})
	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return l
}

// Warnf logs a warning unless quiet.
func Warnf(l log.FieldLogger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	l.Warnf(format, a...)
}
