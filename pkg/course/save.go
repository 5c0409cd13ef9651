package course

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Marshal encodes the course as YAML. Zone order and elevation grid
// layout round-trip losslessly through Marshal/Parse.
func (c *Course) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding course: %w", err)
	}
	return data, nil
}

// SaveTo writes the course to a specific path, creating parent
// directories as needed.
func (c *Course) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
