// Package catalog streams the aggregate search-index document.
package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"css-catalog/internal/record"
)

// Metadata is the fixed index-schema block at the head of every catalog.
//
//go:embed metadata.json
var Metadata []byte

var ErrClosed = errors.New("catalog writer closed")

// Writer emits {"metadata": ..., "updates": [topics..., records...]}.
// Entries are written as they arrive; nothing is buffered per record.
type Writer struct {
	w      *bufio.Writer
	first  bool
	count  int
	closed bool
}

// NewWriter writes the header and the curated topics to w.
func NewWriter(w io.Writer, topics []Topic) (*Writer, error) {
	cw := &Writer{w: bufio.NewWriter(w), first: true}

	var meta bytes.Buffer
	if err := json.Indent(&meta, bytes.TrimSpace(Metadata), "  ", "  "); err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	if _, err := fmt.Fprintf(cw.w, "{\n  \"metadata\" : %s,\n  \"updates\" : [\n", meta.Bytes()); err != nil {
		return nil, err
	}
	for _, t := range topics {
		b, err := record.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", t.Name, err)
		}
		if err := cw.entry(b); err != nil {
			return nil, err
		}
	}
	return cw, nil
}

// Write appends one record to the updates array.
func (cw *Writer) Write(r record.Record) error {
	if cw.closed {
		return ErrClosed
	}
	b, err := record.Marshal(r)
	if err != nil {
		return fmt.Errorf("record %q: %w", r.Base().Name, err)
	}
	return cw.entry(b)
}

// Count reports how many entries, topics included, have been written.
func (cw *Writer) Count() int { return cw.count }

// Close terminates the document and flushes it. It does not close the
// underlying writer.
func (cw *Writer) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	if _, err := cw.w.WriteString("\n  ]\n}\n"); err != nil {
		return err
	}
	return cw.w.Flush()
}

func (cw *Writer) entry(b []byte) error {
	if cw.first {
		cw.first = false
	} else if _, err := cw.w.WriteString(",\n"); err != nil {
		return err
	}
	if _, err := cw.w.WriteString("    "); err != nil {
		return err
	}
	if _, err := cw.w.Write(b); err != nil {
		return err
	}
	cw.count++
	return nil
}
