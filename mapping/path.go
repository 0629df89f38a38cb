package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const sliceSuffix = "[]"

// ParsePath parses a dotted source path. A segment ending in [] selects a
// sequence: "Name", "Customer.Name", "Items[]", "Items[].ProductID".
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	parts := strings.Split(path, ".")
	segments := make([]PathSegment, 0, len(parts))

	for _, part := range parts {
		name, isSlice := strings.CutSuffix(part, sliceSuffix)

		switch {
		case part == "":
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		case name == "":
			return FieldPath{}, fmt.Errorf("invalid path %q: slice without field name", path)
		case !isIdent(name):
			return FieldPath{}, fmt.Errorf("invalid path %q: invalid identifier %q", path, name)
		}

		segments = append(segments, PathSegment{Name: name, IsSlice: isSlice})
	}

	return FieldPath{Segments: segments}, nil
}

func (p FieldPath) String() string {
	var sb strings.Builder

	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(s.Name)

		if s.IsSlice {
			sb.WriteString(sliceSuffix)
		}
	}

	return sb.String()
}

// Last returns the last segment. The path must not be empty.
func (p FieldPath) Last() PathSegment { return p.Segments[len(p.Segments)-1] }

// SplitAtSlice splits the path after its first [] segment: head selects the
// sequence and tail the value read from every element. ok is false when the
// path has no [] segment.
func (p FieldPath) SplitAtSlice() (head, tail FieldPath, ok bool) {
	for i, s := range p.Segments {
		if s.IsSlice {
			return FieldPath{Segments: p.Segments[:i+1]}, FieldPath{Segments: p.Segments[i+1:]}, true
		}
	}

	return p, FieldPath{}, false
}

// SliceCount returns the number of [] segments.
func (p FieldPath) SliceCount() int {
	n := 0

	for _, s := range p.Segments {
		if s.IsSlice {
			n++
		}
	}

	return n
}

// isIdent reports whether s is a letter or underscore followed by letters,
// digits and underscores.
func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return s != ""
}
