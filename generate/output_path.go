package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"celc/config"
)

// resolveOutputPath decides where generated output goes. Empty destination
// means stdout (returned as empty path). A destination that is an existing
// directory gets a file name derived from the scene file, with the given
// extension. Unless overwrite is set an existing destination file is an
// error.
func resolveOutputPath(destination, scenePath, ext string, overwrite bool) (string, error) {
	if destination == "" {
		return "", nil
	}

	path := destination
	if info, err := os.Stat(destination); err == nil && info.IsDir() {
		base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
		path = filepath.Join(destination, config.CleanFileName(base)+ext)
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("destination '%s' already exists and no overwrite was requested", path)
		}
	}
	return path, nil
}

// writeOutput sends data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output '%s': %w", path, err)
	}
	return nil
}
