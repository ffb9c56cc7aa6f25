package writers

import (
	"context"
	"io"

	"refinspect/internal/output"
	"refinspect/internal/reconstruct"
)

func init() {
	Register(output.FormatFASTA, func(ctx context.Context, w io.Writer, src Source, p Params) error {
		return reconstruct.Reconstruct(ctx, src, output.RecordWriter(w, p.LineWidth))
	})
	Register(output.FormatNames, func(_ context.Context, w io.Writer, src Source, _ Params) error {
		return output.WriteNames(w, src.Names())
	})
}
