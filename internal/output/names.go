package output

import (
	"fmt"
	"io"
)

// WriteNames prints one reference name per line in catalog order.
// The catalog's final entry is a sentinel, not a reference, and is skipped.
func WriteNames(w io.Writer, names []string) error {
	if len(names) == 0 {
		return nil
	}
	for _, name := range names[:len(names)-1] {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
