package mapping

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"fieldline/internal/common"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File with defaults applied. The 121
// shorthand is kept as written; see NormalizeFile.
func Parse(data []byte) (*File, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	if mf.Naming == "" {
		mf.Naming = "same"
	}
}

// Marshal serializes a File to YAML.
func Marshal(mf *File) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a File to the given path.
func WriteFile(mf *File, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// NormalizeMapping expands the 121 shorthand into Fields entries, sorted by
// source path and placed before the explicit fields.
func NormalizeMapping(m *Mapping) {
	if len(m.OneToOne) == 0 {
		return
	}

	m.Fields = m.expanded()
	m.OneToOne = nil
}

// expanded returns the 121 entries followed by the explicit fields without
// modifying m.
func (m *Mapping) expanded() []FieldMapping {
	out := make([]FieldMapping, 0, len(m.OneToOne)+len(m.Fields))

	for _, source := range common.SortedKeys(m.OneToOne) {
		out = append(out, FieldMapping{Source: source, Target: m.OneToOne[source]})
	}

	return append(out, slices.Clone(m.Fields)...)
}

// NormalizeFile normalizes all mappings in a file.
func NormalizeFile(mf *File) {
	applyDefaults(mf)

	for i := range mf.Mappings {
		NormalizeMapping(&mf.Mappings[i])
	}
}
