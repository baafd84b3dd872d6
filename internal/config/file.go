package config

import (
	"fmt"
	"os"

	ctsio "github.com/jrh3k5/slp-utils/internal/io"
)

// LoadFile reads the configuration at the given path.
// If no file exists at the path, the default configuration is returned.
func LoadFile(filePath string) (*Config, error) {
	exists, err := ctsio.FileExists(filePath)
	if err != nil {
		return nil, err
	}

	if !exists {
		return Default(), nil
	}

	file, err := os.Open(filePath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file '%s': %w", filePath, err)
	}
	defer func() { _ = file.Close() }()

	cfg, err := FromYAML(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration file '%s': %w", filePath, err)
	}

	return cfg, nil
}
