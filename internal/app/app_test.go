package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"refinspect/internal/joined"
)

func writeIndex(t *testing.T, refs ...[2]string) string {
	t.Helper()
	b := joined.NewBuilder(joined.DefaultAlign)
	for _, r := range refs {
		b.Add(r[0], []byte(r[1]))
	}
	base := filepath.Join(t.TempDir(), "genome")
	if _, err := b.Finish().Save(base); err != nil {
		t.Fatalf("save: %v", err)
	}
	return base
}

func run(args ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_Scenario(t *testing.T) {
	base := writeIndex(t, [2]string{"ref0", "ACNAT"}, [2]string{"ref1", "GGT"})
	code, out, errs := run(base)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := ">ref0\nACNAT\n>ref1\nGGT\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_Across(t *testing.T) {
	base := writeIndex(t, [2]string{"chr", "ACGTACGTAC"})
	code, out, errs := run(base+joined.Ext, "-a", "4")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if want := ">chr\nACGT\nACGT\nAC\n"; out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestRun_Names(t *testing.T) {
	base := writeIndex(t, [2]string{"chr1", "ACGT"}, [2]string{"chrN", "NNNN"}, [2]string{"chr2", "GG"})
	code, out, _ := run("--names", base)
	if code != 0 || out != "chr1\nchrN\nchr2\n" {
		t.Fatalf("exit %d out %q", code, out)
	}
}

func TestRun_Verbose(t *testing.T) {
	base := writeIndex(t, [2]string{"a", "AC"})
	code, out, errs := run("-v", base)
	if code != 0 || out != ">a\nAC\n" {
		t.Fatalf("exit %d out %q", code, out)
	}
	for _, want := range []string{"input index", "index loaded", "joined_len=2"} {
		if !strings.Contains(errs, want) {
			t.Fatalf("verbose log missing %q: %s", want, errs)
		}
	}
}

func TestRun_UsageErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{"--names"},
		{"-a", "0", "genome"},
		{"--bogus", "genome"},
	}
	for _, args := range cases {
		code, out, errs := run(args...)
		if code != 2 {
			t.Fatalf("%v: exit %d", args, code)
		}
		if out != "" || !strings.Contains(errs, "Usage: refinspect") {
			t.Fatalf("%v: out=%q err=%q", args, out, errs)
		}
	}
}

func TestRun_MissingIndex(t *testing.T) {
	code, out, errs := run(filepath.Join(t.TempDir(), "nothing"))
	if code != 1 || out != "" || !strings.Contains(errs, "index not found") {
		t.Fatalf("exit %d out %q err %q", code, out, errs)
	}
}

func TestRun_HelpVersionExamples(t *testing.T) {
	if code, out, _ := run("-h"); code != 0 || !strings.Contains(out, "--across") {
		t.Fatalf("help: exit %d out %q", code, out)
	}
	if code, out, _ := run("--version"); code != 0 || !strings.HasPrefix(out, "refinspect version ") {
		t.Fatalf("version: exit %d out %q", code, out)
	}
	if code, out, _ := run("--examples"); code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("examples: exit %d out %q", code, out)
	}
}

func TestRunContext_Canceled(t *testing.T) {
	base := writeIndex(t, [2]string{"a", "AC"}, [2]string{"b", "GT"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, []string{base}, &out, &errBuf)
	if code != 3 {
		t.Fatalf("exit %d", code)
	}
	if out.String() != ">a\nAC\n" {
		t.Fatalf("records after cancel: %q", out.String())
	}
}
