// Package node implements the conversion pipeline: leaf nodes that extract a
// value from a source and write it into a working context, composite nodes
// that fan a transformed source and context out to their children, and the
// builder assembling them.
//
// Process never panics on its own; every failure is returned as a *Fault
// carrying the field hierarchy it crossed.
package node

import (
	"reflect"

	"github.com/rs/zerolog"

	"fieldline/field"
)

// Descriptor is the type-erased view of a node, used to walk a pipeline tree.
type Descriptor interface {
	Field() field.Field
	Kind() Kind
	// Children returns the child nodes in processing order; empty for leaves.
	Children() []Descriptor
}

// Node consumes a source value within a working context.
type Node[S, C any] interface {
	Descriptor
	Process(source S, ctx C) error
}

// IsAbsent reports whether v is nil or a nil pointer, map, slice, function,
// channel or interface.
func IsAbsent[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}

	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Lift adapts an infallible function to the transform signature.
func Lift[A, B any](fn func(A) B) func(A) (B, error) {
	return func(a A) (B, error) { return fn(a), nil }
}

func identity[T any](v T) (T, error) { return v, nil }

func descriptors[S, C any](nodes []Node[S, C]) []Descriptor {
	if len(nodes) == 0 {
		return nil
	}

	out := make([]Descriptor, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}

	return out
}

var logger = zerolog.Nop()

// SetLogger installs the logger used for silenced faults. Call it before any
// pipeline runs.
func SetLogger(l zerolog.Logger) { logger = l }

// Logger returns the installed logger.
func Logger() zerolog.Logger { return logger }

func logSilenced(f field.Field, kind FaultKind, err error) {
	logger.Debug().
		Str("field", f.String()).
		Stringer("fault", kind).
		Err(err).
		Msg("fault silenced")
}
