package codetable

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML layout of a code table
type tableFile struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a YAML code table from path
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read code table: %w", err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load code table %s: %w", path, err)
	}
	return table, nil
}

// Parse builds a table from YAML data
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse code table: %w", err)
	}
	return New(f.Entries)
}

// Save writes the table as YAML to path
func (t *Table) Save(path string) error {
	data, err := yaml.Marshal(tableFile{Entries: t.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal code table: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write code table: %w", err)
	}
	return nil
}
