package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteNames(t *testing.T) {
	var buf bytes.Buffer
	names := []string{"chr1", "chr2", "chrM", ""}
	if err := WriteNames(&buf, names); err != nil {
		t.Fatal(err)
	}
	if want := "chr1\nchr2\nchrM\n"; buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	if n := strings.Count(buf.String(), "\n"); n != len(names)-1 {
		t.Fatalf("%d lines, want %d", n, len(names)-1)
	}
	if strings.Contains(buf.String(), ">") {
		t.Fatalf("names output carries header markers")
	}
}

func TestWriteNames_Empty(t *testing.T) {
	for _, names := range [][]string{nil, {""}} {
		var buf bytes.Buffer
		if err := WriteNames(&buf, names); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Fatalf("names %q: got %q", names, buf.String())
		}
	}
}
