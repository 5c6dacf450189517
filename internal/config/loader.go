package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration bundle.
// For every section the search order is: customDir/<section>.yaml ->
// ~/.blockarcade/configs/<section>.yaml -> ./configs/<section>.yaml ->
// embedded default. Values missing from a file keep their defaults.
func Load(customDir string) (Bundle, error) {
	b := Defaults()

	sections := []struct {
		name string
		dst  any
	}{
		{"loop", &b.Loop},
		{"snake", &b.Snake},
		{"sudoku", &b.Sudoku},
		{"template", &b.Template},
	}

	for _, s := range sections {
		if err := loadSection(customDir, s.name, s.dst); err != nil {
			return b, err
		}
	}

	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

// loadSection decodes the first config file found for a section into dst.
func loadSection(customDir, section string, dst any) error {
	filename := section + ".yaml"

	// Try custom directory first
	if customDir != "" {
		path := filepath.Join(customDir, filename)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, dst); err != nil {
				return fmt.Errorf("config: failed to parse %s: %w", path, err)
			}
			return nil
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		// Section not overridden in the custom directory
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, dst); err != nil {
				return fmt.Errorf("config: failed to parse %s: %w", userCfgPath, err)
			}
			return nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("config: failed to parse configs/%s: %w", filename, err)
		}
		return nil
	}

	// Use embedded default YAML; dst already holds the hardcoded defaults
	// if this fails.
	//nolint:errcheck // Embedded files are covered by tests
	yaml.Unmarshal(GetDefaultYAML(section), dst)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockarcade", "configs", filename)
}
