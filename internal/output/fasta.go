package output

import (
	"fmt"
	"io"
)

// WriteRecord writes one FASTA record: a ">name" header followed by seq
// wrapped at width characters per line. The last line may be shorter.
func WriteRecord(w io.Writer, name string, seq []byte, width int) error {
	if width < 1 {
		return fmt.Errorf("fasta line width must be at least 1, got %d", width)
	}
	if _, err := fmt.Fprintf(w, ">%s\n", name); err != nil {
		return err
	}
	for i := 0; i < len(seq); i += width {
		end := min(i+width, len(seq))
		if _, err := w.Write(seq[i:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// RecordWriter returns an emit callback that formats records at a fixed width.
func RecordWriter(w io.Writer, width int) func(name string, seq []byte) error {
	return func(name string, seq []byte) error {
		return WriteRecord(w, name, seq, width)
	}
}
