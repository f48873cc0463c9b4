package fitlog

import (
	"bytes"
	"fmt"
	"os"
)

// LoadTable reads and decodes the CSV file at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q (%v): %w", path, err, ErrFileAccess)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return t, nil
}

// SaveTable replaces the file at path with the encoded table. The content is
// encoded fully in memory first, so a failure never leaves a partially
// written file behind.
func SaveTable(path string, t *Table) error {
	var buf bytes.Buffer
	if err := WriteTable(&buf, t); err != nil {
		return fmt.Errorf("cannot encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write %q (%v): %w", path, err, ErrFileAccess)
	}
	return nil
}
