package fasta

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path ("-" is stdin). Gzip input is detected by
// magic number (1F 8B) or by a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	var (
		src     io.Reader
		closers []io.Closer
	)
	if path == "-" {
		src = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
		closers = append(closers, fh)
	}

	br := bufio.NewReader(src)
	magic, _ := br.Peek(2)
	if (len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return nil, err
		}
		closers = append([]io.Closer{gr}, closers...)
		return &multiReadCloser{Reader: gr, closers: closers}, nil
	}
	return &multiReadCloser{Reader: br, closers: closers}, nil
}
