package joined

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlign starts every reference on a fresh packed byte.
const DefaultAlign = 4

// Stats summarizes what a Builder has consumed.
type Stats struct {
	Refs      int
	Bases     int // stored unambiguous bases
	Elided    int // ambiguous positions left out of the joined sequence
	Padding   int // filler positions between references
	JoinedLen int
}

// Builder assembles an Index from whole reference sequences.
type Builder struct {
	align int
	names []string
	lens  []int
	frags []Fragment
	seq   Packed
	stats Stats
}

// NewBuilder returns a Builder padding references to multiples of align
// joined positions. align < 1 is treated as 1 (no padding).
func NewBuilder(align int) *Builder {
	if align < 1 {
		align = 1
	}
	return &Builder{align: align}
}

// Add appends one reference. Runs of A/C/G/T become fragments; every other
// symbol is elided but still counts toward the reference length.
func (b *Builder) Add(name string, seq []byte) {
	ref := len(b.names)
	b.names = append(b.names, name)
	b.lens = append(b.lens, len(seq))
	b.stats.Refs++

	padded := false
	for i := 0; i < len(seq); {
		if !IsBase(seq[i]) {
			b.stats.Elided++
			i++
			continue
		}
		if !padded {
			b.stats.Padding += b.seq.pad(b.align)
			padded = true
		}
		start := i
		for i < len(seq) && IsBase(seq[i]) {
			b.seq.Append(seq[i])
			i++
		}
		b.frags = append(b.frags, Fragment{
			Ref:       ref,
			RefOff:    start,
			JoinedOff: b.seq.Len() - (i - start),
			Len:       i - start,
		})
		b.stats.Bases += i - start
	}
}

// Stats reports totals so far.
func (b *Builder) Stats() Stats {
	s := b.stats
	s.JoinedLen = b.seq.Len()
	return s
}

// Finish freezes the builder into an Index. The Builder must not be reused.
func (b *Builder) Finish() *Index {
	names := append(b.names, Sentinel)
	seq := newPacked(b.seq.data, b.seq.n)
	return newIndex(uuid.New(), time.Now().UTC().Truncate(time.Second), names, b.lens, b.frags, seq)
}
