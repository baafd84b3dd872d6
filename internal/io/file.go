package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileExists checks to see if a file exists at the given path.
func FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case err == nil:
		return true, nil
	default:
		return false, fmt.Errorf("failed to check for existence of file at path '%s': %w", filePath, err)
	}
}

// ReplaceFile writes a file through a temporary file in the same directory and renames it into place.
// If write fails, any existing file at filePath is left untouched.
func ReplaceFile(filePath string, write func(w io.Writer) error) error {
	mode := os.FileMode(0o644) //nolint:mnd
	if info, err := os.Stat(filePath); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for '%s': %w", filePath, err)
	}

	tmpPath := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("failed to set permissions of temporary file for '%s': %w", filePath, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush temporary file for '%s': %w", filePath, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file for '%s': %w", filePath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to replace file '%s': %w", filePath, err)
	}
	renamed = true

	return nil
}
