// Package files handles all document reading and writing. The core
// packages never touch the filesystem; they consume and produce strings,
// and the CLI goes through this package to move them to and from disk.
package files

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/conneroisu/socialxml/internal/render"
)

// Read loads a UTF-8 document from disk.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read document %s", path)
	}
	return string(data), nil
}

// Write stores a document, creating parent directories as needed.
func Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write document %s", path)
	}
	return nil
}

// WriteFormatted pretty-prints the document before storing it, the usual
// write-back path after an edit.
func WriteFormatted(path, content string, f render.Formatter) error {
	return Write(path, f.Format(content)+"\n")
}
