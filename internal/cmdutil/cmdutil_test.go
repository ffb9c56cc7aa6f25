package cmdutil

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"
)

type errWriter struct{ err error }

func (e errWriter) Write([]byte) (int, error) { return 0, e.err }

func TestFlushExit(t *testing.T) {
	var out, errBuf bytes.Buffer
	w := bufio.NewWriter(&out)
	_, _ = w.WriteString("x")
	if code := FlushExit(w, &errBuf, ExitUsage); code != ExitUsage || out.String() != "x" {
		t.Fatalf("code=%d out=%q", code, out.String())
	}

	w = bufio.NewWriter(errWriter{syscall.EPIPE})
	_, _ = w.WriteString("x")
	if code := FlushExit(w, &errBuf, ExitUsage); code != ExitOK {
		t.Fatalf("broken pipe: code=%d", code)
	}

	w = bufio.NewWriter(errWriter{errors.New("disk full")})
	_, _ = w.WriteString("x")
	if code := FlushExit(w, &errBuf, ExitOK); code != ExitOutput || !strings.Contains(errBuf.String(), "disk full") {
		t.Fatalf("code=%d stderr=%q", code, errBuf.String())
	}
}

func TestOutputExit(t *testing.T) {
	var errBuf bytes.Buffer
	if OutputExit(nil, &errBuf) != ExitOK || OutputExit(io.ErrClosedPipe, &errBuf) != ExitOK {
		t.Fatalf("nil and closed pipe must exit 0")
	}
	if OutputExit(errors.New("boom"), &errBuf) != ExitOutput {
		t.Fatalf("write error must exit %d", ExitOutput)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false, false).Debug("hidden")
	NewLogger(&buf, true, false).Debug("shown")
	NewLogger(&buf, false, true).Info("hidden")
	Warnf(NewLogger(&buf, false, false), true, "hidden %d", 1)
	Warnf(NewLogger(&buf, false, false), false, "warned %d", 2)
	s := buf.String()
	if strings.Contains(s, "hidden") || !strings.Contains(s, "shown") || !strings.Contains(s, "warned 2") {
		t.Fatalf("unexpected log output: %q", s)
	}
}
