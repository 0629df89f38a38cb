package mapping

import (
	"fieldline/field"
)

// File represents the root of a YAML mapping definition file.
type File struct {
	// Version of the mapping schema.
	Version string `yaml:"version,omitempty"`

	// Naming is the style deriving external names from source names when a
	// field has no explicit target. See field.ParseStyle.
	Naming string `yaml:"naming,omitempty"`

	Mappings []Mapping `yaml:"mappings"`
}

// Mapping describes one pipeline.
type Mapping struct {
	// Name is the internal name of the root field and the key of the
	// compiled pipeline.
	Name string `yaml:"name"`

	// Target is the external name of the root field.
	Target string `yaml:"target,omitempty"`

	// Description documents the root field.
	Description string `yaml:"description,omitempty"`

	// OneToOne is a simplified mapping syntax where keys are source paths
	// and values are target names.
	// Example: { "OrderID": "id", "CustomerName": "customer" }
	OneToOne map[string]string `yaml:"121,omitempty"`

	// Fields defines explicit field mappings with full control.
	Fields []FieldMapping `yaml:"fields,omitempty"`
}

// FieldMapping defines how one target entry is populated.
type FieldMapping struct {
	// Source is the path of the value, relative to the enclosing source.
	Source string `yaml:"source"`

	// Target is the key written in the enclosing map. Defaults to the last
	// source segment converted with the file naming style.
	Target string `yaml:"target,omitempty"`

	// Transform names registry transforms applied in order.
	Transform StringOrArray `yaml:"transform,omitempty"`

	// Default is written when the source value is missing.
	Default any `yaml:"default,omitempty"`

	Private   bool `yaml:"private,omitempty"`
	Filter    bool `yaml:"filter,omitempty"`
	OmitEmpty bool `yaml:"omit_empty,omitempty"`

	Description string `yaml:"description,omitempty"`

	// Fields maps a nested object, or every element of a sequence when the
	// source path uses [].
	Fields []FieldMapping `yaml:"fields,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML fields to accept both "upper" and ["trim", "upper"].
type StringOrArray []string

// FieldPath represents a parsed field path like "Items[].ProductID".
type FieldPath struct {
	Segments []PathSegment
}

// PathSegment represents a single segment of a field path.
type PathSegment struct {
	Name    string
	IsSlice bool
}

// TargetName returns the external name of fm under style.
func (fm *FieldMapping) TargetName(style field.Style) string {
	if fm.Target != "" {
		return fm.Target
	}

	fp, err := ParsePath(fm.Source)
	if err != nil || len(fp.Segments) == 0 {
		return fm.Source
	}

	return style.Apply(fp.Last().Name)
}

// Field returns the metadata of fm under style.
func (fm *FieldMapping) Field(style field.Style) field.Field {
	return field.OfNames(fm.Source, fm.TargetName(style)).
		WithPublic(!fm.Private).
		WithFilter(fm.Filter).
		WithDescription(fm.Description)
}

// RootField returns the metadata of the mapping root.
func (m *Mapping) RootField(style field.Style) field.Field {
	external := m.Target
	if external == "" {
		external = style.Apply(m.Name)
	}

	return field.OfNames(m.Name, external).WithDescription(m.Description)
}
