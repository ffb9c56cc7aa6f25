// Package joined implements a joined reference index: every reference
// concatenated into one 2-bit packed sequence with ambiguous runs elided,
// plus the fragment table that maps joined positions back to references.
package joined

import (
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"
)

// Sentinel terminates the name catalog.
const Sentinel = ""

// Fragment is one unambiguous stretch of a reference as stored in the
// joined sequence.
type Fragment struct {
	Ref       int `json:"ref"`
	RefOff    int `json:"ref_off"`
	JoinedOff int `json:"joined_off"`
	Len       int `json:"len"`
}

func (f Fragment) end() int { return f.JoinedOff + f.Len }

// Index is a loaded joined index. It is read-only once built.
type Index struct {
	id      uuid.UUID
	created time.Time
	names   []string
	lens    []int
	frags   *btree.BTreeG[Fragment]
	seq     *Packed
}

func byJoinedOff(a, b Fragment) bool { return a.JoinedOff < b.JoinedOff }

func newIndex(id uuid.UUID, created time.Time, names []string, lens []int, frags []Fragment, seq *Packed) *Index {
	tree := btree.NewG(32, byJoinedOff)
	for _, f := range frags {
		tree.ReplaceOrInsert(f)
	}
	return &Index{id: id, created: created, names: names, lens: lens, frags: tree, seq: seq}
}

// ID identifies the build that produced the index.
func (ix *Index) ID() uuid.UUID { return ix.id }

// Created is the build time.
func (ix *Index) Created() time.Time { return ix.created }

// RefCount is the number of catalog entries, sentinel included.
func (ix *Index) RefCount() int { return len(ix.names) }

// RefName returns the name of reference id.
func (ix *Index) RefName(id int) string { return ix.names[id] }

// Names returns the catalog, sentinel included.
func (ix *Index) Names() []string { return ix.names }

// RefLen is the declared length of reference id, elided positions included.
func (ix *Index) RefLen(id int) int { return ix.lens[id] }

// JoinedLen is the length of the joined sequence, alignment padding included.
func (ix *Index) JoinedLen() int { return ix.seq.Len() }

// CharAt returns the joined base at pos.
func (ix *Index) CharAt(pos int) byte { return ix.seq.At(pos) }

// Resolve maps a joined position to (reference, offset, reference length).
// Padding positions between references resolve with ok == false.
func (ix *Index) Resolve(pos int) (refID, off, refLen int, ok bool) {
	var hit Fragment
	found := false
	ix.frags.DescendLessOrEqual(Fragment{JoinedOff: pos}, func(f Fragment) bool {
		hit, found = f, true
		return false
	})
	if !found || pos >= hit.end() {
		return -1, 0, 0, false
	}
	return hit.Ref, hit.RefOff + pos - hit.JoinedOff, ix.lens[hit.Ref], true
}

// Fragments returns the fragment table in joined order.
func (ix *Index) Fragments() []Fragment {
	out := make([]Fragment, 0, ix.frags.Len())
	ix.frags.Ascend(func(f Fragment) bool {
		out = append(out, f)
		return true
	})
	return out
}
