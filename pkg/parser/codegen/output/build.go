package output

import (
	"fmt"
	"hackasm/pkg/parser/codegen"
	"os"
	"path/filepath"
)

// commit writes data next to path and renames it into place, so path
// either keeps its old content or holds the complete new one
func commit(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hackasm_build_*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set output mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

func errMalformedWord(i int, w codegen.Word) error {
	return fmt.Errorf("word %d is malformed: %q", i, string(w))
}
