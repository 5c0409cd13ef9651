package course

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a course from YAML bytes and checks its structure. A
// zone with degenerate geometry does not fail the parse; consumers skip
// such zones individually.
func Parse(data []byte) (*Course, error) {
	var c Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding course: %w", err)
	}
	if err := c.ValidateStructure(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads and parses a course file from disk.
func LoadFile(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}
