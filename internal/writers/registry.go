// internal/writers/registry.go
package writers

import (
	"context"
	"fmt"
	"io"
	"sort"

	"refinspect/internal/reconstruct"
)

// Source is what a format writer may read from an index.
type Source interface {
	reconstruct.Source
	Names() []string
}

// Params carries per-run presentation settings.
type Params struct {
	LineWidth int
}

// WriterFunc renders src to w.
type WriterFunc func(ctx context.Context, w io.Writer, src Source, p Params) error

// Writer registry (format → handler). Registered in init() blocks.
var registry = map[string]WriterFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn WriterFunc) { registry[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(ctx context.Context, format string, w io.Writer, src Source, p Params) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(ctx, w, src, p)
}
