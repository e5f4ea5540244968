// Package store persists the application's flat record lists as JSON files,
// one file per list. A corrupt or missing file is recovered by starting from
// an empty list; saves are whole-file writes, last writer wins.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// loadList reads a JSON-serialized list from path into dst.
// Missing files and parse failures leave dst untouched; parse failures are
// reported on debugOut when non-nil.
func loadList(path string, dst any, debugOut io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil && debugOut != nil {
		fmt.Fprintf(debugOut, "debug: discarding corrupt %s: %v\n", filepath.Base(path), err)
	}
}

// saveList writes a JSON-serialized list to path, creating the parent
// directory as needed. Mode 0600, directories 0700.
func saveList(path string, src any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
