package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteRecord(t *testing.T) {
	cases := []struct {
		seq   string
		width int
		want  string
	}{
		{"ACNAT", 60, ">r\nACNAT\n"},
		{"ACGTACGT", 4, ">r\nACGT\nACGT\n"},
		{"ACGTACGTA", 4, ">r\nACGT\nACGT\nA\n"},
		{"ACG", 1, ">r\nA\nC\nG\n"},
		{"", 60, ">r\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := WriteRecord(&buf, "r", []byte(tc.seq), tc.width); err != nil {
			t.Fatalf("WriteRecord(%q,%d): %v", tc.seq, tc.width, err)
		}
		if buf.String() != tc.want {
			t.Fatalf("WriteRecord(%q,%d):\n got: %q\nwant: %q", tc.seq, tc.width, buf.String(), tc.want)
		}
	}
}

func TestWriteRecord_LineWrapLaw(t *testing.T) {
	seq := strings.Repeat("ACGTN", 37) // 185
	for _, width := range []int{1, 7, 60, 184, 185, 186, 1000} {
		var buf bytes.Buffer
		if err := WriteRecord(&buf, "chr", []byte(seq), width); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if lines[0] != ">chr" {
			t.Fatalf("header %q", lines[0])
		}
		body := lines[1:]
		if want := (len(seq) + width - 1) / width; len(body) != want {
			t.Fatalf("width %d: %d lines, want %d", width, len(body), want)
		}
		for i, l := range body[:len(body)-1] {
			if len(l) != width {
				t.Fatalf("width %d: line %d has %d chars", width, i, len(l))
			}
		}
		if last := body[len(body)-1]; len(last) < 1 || len(last) > width {
			t.Fatalf("width %d: last line has %d chars", width, len(last))
		}
		if strings.Join(body, "") != seq {
			t.Fatalf("width %d: concatenated lines differ from input", width)
		}
	}
}

func TestWriteRecord_BadWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, "r", []byte("A"), 0); err == nil {
		t.Fatalf("expected error for width 0")
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %q on error", buf.String())
	}
}

type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errors.New("closed")
	}
	f.n--
	return len(p), nil
}

func TestWriteRecord_PropagatesWriteError(t *testing.T) {
	if err := WriteRecord(&failAfter{n: 2}, "r", []byte("ACGTACGT"), 2); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestRecordWriter(t *testing.T) {
	var buf bytes.Buffer
	emit := RecordWriter(&buf, 3)
	_ = emit("a", []byte("ACGTA"))
	_ = emit("b", []byte("GG"))
	if want := ">a\nACG\nTA\n>b\nGG\n"; buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
