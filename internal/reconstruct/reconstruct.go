// Package reconstruct rebuilds per-reference sequences from a joined index.
//
// The joined sequence stores every reference back to back with ambiguous runs
// elided. Reconstruct walks it once, asks a Resolver where each position
// belongs, reinserts Placeholder symbols for the elided positions and hands
// each finished reference to an Emit callback. Only one reference buffer is
// alive at a time.
package reconstruct

import (
	"bytes"
	"context"
)

// NoRef marks "no current reference".
const NoRef = -1

// Placeholder is reinserted for positions elided from the joined sequence.
const Placeholder byte = 'N'

// Resolver maps a joined position to its reference coordinates.
// When ok is true, 0 <= off < refLen and refID is a valid catalog index.
type Resolver interface {
	Resolve(pos int) (refID, off, refLen int, ok bool)
}

// Catalog is the ordered list of reference names.
type Catalog interface {
	RefCount() int
	RefName(id int) string
}

// Sequence gives read access to the joined sequence.
type Sequence interface {
	JoinedLen() int
	CharAt(pos int) byte
}

// Source bundles what a reconstruction pass consumes.
type Source interface {
	Resolver
	Catalog
	Sequence
}

// Emit receives one finished reference. seq is owned by the callee.
type Emit func(name string, seq []byte) error

// Reconstruct scans src once and calls emit for every reference that has at
// least one valid position, in order of first appearance. It stops at the
// first emit error. ctx is checked between references only.
func Reconstruct(ctx context.Context, src Source, emit Emit) error {
	var (
		cur    = NoRef
		curLen int
		last   int
		buf    []byte
	)

	flush := func() error {
		if len(buf) < curLen {
			buf = append(buf, bytes.Repeat([]byte{Placeholder}, curLen-len(buf))...)
		}
		return emit(src.RefName(cur), buf)
	}

	n := src.JoinedLen()
	for i := 0; i < n; i++ {
		refID, off, refLen, ok := src.Resolve(i)
		if !ok {
			continue
		}
		if refID != cur {
			if cur != NoRef {
				if err := flush(); err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			cur = refID
			curLen = refLen
			last = 0
			buf = make([]byte, 0, refLen)
		}
		if gap := off - last; gap > 1 {
			if last != 0 {
				gap--
			}
			buf = append(buf, bytes.Repeat([]byte{Placeholder}, gap)...)
		}
		buf = append(buf, src.CharAt(i))
		last = off
	}
	if cur != NoRef && cur < src.RefCount() {
		return flush()
	}
	return nil
}

// Collect runs Reconstruct and returns every record in emission order.
// Handy for tests and small indexes; it defeats the single-buffer bound.
func Collect(ctx context.Context, src Source) ([]Record, error) {
	var out []Record
	err := Reconstruct(ctx, src, func(name string, seq []byte) error {
		out = append(out, Record{Name: name, Seq: seq})
		return nil
	})
	return out, err
}

// Record is one reconstructed reference.
type Record struct {
	Name string
	Seq  []byte
}
