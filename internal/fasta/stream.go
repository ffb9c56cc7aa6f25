package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq keeps the input case, without newlines.
type Record struct {
	ID  string
	Seq []byte
}

var errNoHeader = errors.New("fasta: sequence data before first header")

// Stream parses FASTA from r and calls emit once per record, in file order.
// The Seq slice handed to emit is not reused.
//
// It is cancelable: it returns ctx.Err() promptly when ctx is done.
func Stream(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		started bool
		seq     []byte
	)
	flush := func() error {
		if !started {
			return nil
		}
		rec := Record{ID: id, Seq: seq}
		seq = nil
		return emit(rec)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, started = parseHeaderID(line[1:]), true
			continue
		}
		if !started {
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			return errNoHeader
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPath opens path (see Open) and streams its records.
func StreamPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Stream(ctx, rc, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
