// Package fs provides file-based persistence for leaflet record sets.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ksiska/prospekt"
)

// Ensure Writer implements prospekt.LeafletWriter at compile time.
var _ prospekt.LeafletWriter = (*Writer)(nil)

// Writer writes a leaflet record set to a JSON file.
// The output is a UTF-8 JSON array with 4-space indentation; non-ASCII
// characters are preserved literally rather than escaped.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// FormatLeaflets serializes a record set to its output form.
// An empty or nil sequence serializes as an empty array, not null.
func FormatLeaflets(leaflets []*prospekt.Leaflet) ([]byte, error) {
	if leaflets == nil {
		leaflets = []*prospekt.Leaflet{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(leaflets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLeaflets writes the record set to disk. The file is written to a
// temporary sibling first and renamed into place so readers never see a
// partially written record set.
func (w *Writer) WriteLeaflets(ctx context.Context, leaflets []*prospekt.Leaflet) error {
	for _, l := range leaflets {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	content, err := FormatLeaflets(leaflets)
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
