// Package output serializes client records as JSON lines: one compact,
// newline-terminated object per record, UTF-8, non-ASCII left unescaped.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"clientfeed/pkg/clientfeed/models"
)

// Write encodes records to w, one per line, in slice order.
func Write(w io.Writer, records []*models.Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	return bw.Flush()
}

// WriteFile writes records to a file, creating or truncating it.
func WriteFile(path string, records []*models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
