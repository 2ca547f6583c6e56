package navtree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a navigation tree from a YAML file and validates it.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read nav file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML navigation tree.
func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse nav file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid nav file: %w", err)
	}
	return &t, nil
}

// Marshal encodes the tree in the layout accepted by Parse.
func (t *Tree) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
