// Package emit writes generated collection documents to disk.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	js "github.com/reoring/contentschema/jsonschema"
)

// Suffix is appended to the collection name to form the file name.
const Suffix = ".schema.json"

// ErrInvalidName is returned for collection names that do not form a single
// file name inside Dir.
var ErrInvalidName = errors.New("emit: invalid collection name")

// Writer writes documents below Dir.
type Writer struct {
	Fs     afero.Fs
	Dir    string
	Indent string
}

// Path returns the file a collection is written to.
func (w *Writer) Path(name string) string { return filepath.Join(w.Dir, name+Suffix) }

// Write encodes doc and stores it as <Dir>/<name>.schema.json. Unchanged
// files are left untouched; changed reports whether the file was written.
func (w *Writer) Write(name string, doc *js.Document) (path string, changed bool, err error) {
	if err := checkName(name); err != nil {
		return "", false, err
	}
	fs := w.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := js.Marshal(doc, w.Indent)
	if err != nil {
		return "", false, fmt.Errorf("encode %s: %w", name, err)
	}
	path = w.Path(name)
	if old, err := afero.ReadFile(fs, path); err == nil && bytes.Equal(old, data) {
		return path, false, nil
	}
	if err := fs.MkdirAll(w.Dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create %s: %w", w.Dir, err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("write %s: %w", path, err)
	}
	return path, true, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
