// Package field provides the metadata attached to every pipeline node:
// the internal and external names of a mapped attribute, its visibility,
// whether it participates in filtering, and a free-form description.
//
// Field is a small comparable value. Two fields are equal when all five
// attributes are equal, so a Field can be used directly as a map key.
package field

import "strings"

// Field describes one named mapping between an internal attribute and its
// external representation.
type Field struct {
	internal    string
	external    string
	private     bool
	filter      bool
	description string
}

// Of returns a public, non-filtering field using name for both sides.
func Of(name string) Field {
	return Field{internal: name, external: name}
}

// OfNames returns a public, non-filtering field with distinct internal and
// external names.
func OfNames(internal, external string) Field {
	return Field{internal: internal, external: external}
}

// Empty returns the placeholder field used where a node needs metadata but no
// mapping exists.
func Empty() Field {
	return Field{private: true, description: "dummy"}
}

// InternalName is the name of the attribute in the source model.
func (f Field) InternalName() string { return f.internal }

// ExternalName is the name of the attribute in the target representation.
func (f Field) ExternalName() string { return f.external }

// IsPublic reports whether the field is exposed.
func (f Field) IsPublic() bool { return !f.private }

// HasFilter reports whether the field is used as a filter.
func (f Field) HasFilter() bool { return f.filter }

// Description returns the free-form mapping description.
func (f Field) Description() string { return f.description }

// WithPublic returns f with the public flag set to p.
func (f Field) WithPublic(p bool) Field {
	if f.IsPublic() == p {
		return f
	}

	f.private = !p

	return f
}

// WithFilter returns f with the filter flag set to v.
func (f Field) WithFilter(v bool) Field {
	if f.filter == v {
		return f
	}

	f.filter = v

	return f
}

// WithDescription returns f with the given description.
func (f Field) WithDescription(text string) Field {
	if f.description == text {
		return f
	}

	f.description = text

	return f
}

// IsDefault reports whether f carries only names: public, no filter and no
// description.
func (f Field) IsDefault() bool {
	return !f.private && !f.filter && f.description == ""
}

// Equal reports whether two fields are structurally identical.
func (f Field) Equal(other Field) bool {
	if f.IsDefault() && other.IsDefault() {
		return f.internal == other.internal && f.external == other.external
	}

	return f == other
}

// String renders the field as "internal->external", or just the name when
// both sides match.
func (f Field) String() string {
	if f.internal == f.external {
		return f.internal
	}

	var sb strings.Builder

	sb.Grow(len(f.internal) + len(f.external) + 2)
	sb.WriteString(f.internal)
	sb.WriteString("->")
	sb.WriteString(f.external)

	return sb.String()
}
