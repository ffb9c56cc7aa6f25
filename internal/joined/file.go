package joined

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Magic opens every index file.
const Magic = "RJX1"

// Ext is the index file suffix.
const Ext = ".rjx"

const maxHeader = 1 << 30

var (
	ErrBadMagic = errors.New("not a joined index (bad magic)")
	ErrNotFound = errors.New("index not found")
)

type header struct {
	ID        uuid.UUID  `json:"id"`
	Created   time.Time  `json:"created"`
	Names     []string   `json:"names"`
	Lengths   []int      `json:"lengths"`
	Fragments []Fragment `json:"fragments"`
	JoinedLen int        `json:"joined_len"`
}

// Encode writes ix: magic, little-endian uint32 header length, JSON header,
// then the zstd-compressed packed sequence.
func (ix *Index) Encode(w io.Writer) error {
	hdr, err := json.Marshal(header{
		ID:        ix.id,
		Created:   ix.created,
		Names:     ix.names,
		Lengths:   ix.lens,
		Fragments: ix.Fragments(),
		JoinedLen: ix.seq.Len(),
	})
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(hdr))); err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := zw.Write(ix.seq.Bytes()); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode sequence: %w", err)
	}
	return zw.Close()
}

// Decode reads an index written by Encode and checks that the fragment
// table is consistent with the catalog and the joined sequence.
func Decode(r io.Reader) (*Index, error) {
	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if string(magic[:]) != Magic {
		return nil, ErrBadMagic
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("read header length: %w", err)
	}
	if n > maxHeader {
		return nil, fmt.Errorf("header length %d exceeds limit", n)
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var h header
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decode sequence: %w", err)
	}
	if len(data) != packedSize(h.JoinedLen) {
		return nil, fmt.Errorf("sequence holds %d bytes, header declares %d positions", len(data), h.JoinedLen)
	}
	if err := h.check(); err != nil {
		return nil, err
	}
	return newIndex(h.ID, h.Created, h.Names, h.Lengths, h.Fragments, newPacked(data, h.JoinedLen)), nil
}

func (h *header) check() error {
	if len(h.Names) != len(h.Lengths)+1 {
		return fmt.Errorf("catalog has %d names for %d references", len(h.Names), len(h.Lengths))
	}
	prevEnd := 0
	for i, f := range h.Fragments {
		switch {
		case f.Ref < 0 || f.Ref >= len(h.Lengths):
			return fmt.Errorf("fragment %d: reference %d out of range", i, f.Ref)
		case f.Len < 1 || f.RefOff < 0 || f.RefOff+f.Len > h.Lengths[f.Ref]:
			return fmt.Errorf("fragment %d: offsets [%d,%d) outside reference of length %d", i, f.RefOff, f.RefOff+f.Len, h.Lengths[f.Ref])
		case f.JoinedOff < prevEnd || f.end() > h.JoinedLen:
			return fmt.Errorf("fragment %d: joined span [%d,%d) overlaps or exceeds %d", i, f.JoinedOff, f.end(), h.JoinedLen)
		}
		prevEnd = f.end()
	}
	return nil
}

// ResolvePath finds the index file for base, trying base as given and then
// with Ext appended.
func ResolvePath(base string) (string, error) {
	candidates := []string{base}
	if !strings.HasSuffix(base, Ext) {
		candidates = append(candidates, base+Ext)
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, base)
}

// Load resolves base and decodes the index file. It returns the path used.
func Load(base string) (*Index, string, error) {
	path, err := ResolvePath(base)
	if err != nil {
		return nil, "", err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	defer fh.Close()
	ix, err := Decode(bufio.NewReader(fh))
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return ix, path, nil
}

// Save writes ix to base (Ext appended when missing) and returns the path.
func (ix *Index) Save(base string) (string, error) {
	path := base
	if !strings.HasSuffix(path, Ext) {
		path += Ext
	}
	fh, err := os.Create(path)
	if err != nil {
		return "", err
	}
	bw := bufio.NewWriter(fh)
	if err := ix.Encode(bw); err != nil {
		_ = fh.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return "", err
	}
	return path, fh.Close()
}
