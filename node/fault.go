package node

import (
	"errors"
	"fmt"
	"strings"

	"fieldline/field"
)

//go:generate go tool stringer -type=FaultKind -trimprefix=Fault -output=faultkind_string.go

// FaultKind classifies where in a pipeline a failure originated.
type FaultKind int

const (
	_ FaultKind = iota

	FaultExtraction   // extractor, decorator or value mapping failed
	FaultWrite        // writer or raw consumer failed
	FaultTransform    // source or context transform of a composite failed
	FaultInvalidState // builder misuse
)

var (
	ErrExtraction          = errors.New("extraction failed")
	ErrWrite               = errors.New("write failed")
	ErrTransform           = errors.New("transform failed")
	ErrInvalidBuilderState = errors.New("invalid builder state")
)

func (k FaultKind) sentinel() error {
	switch k {
	case FaultExtraction:
		return ErrExtraction
	case FaultWrite:
		return ErrWrite
	case FaultTransform:
		return ErrTransform
	case FaultInvalidState:
		return ErrInvalidBuilderState
	default:
		return nil
	}
}

// Frame is one synthetic entry of the virtual call stack: a composite node
// that a fault passed through on its way up.
type Frame struct {
	Field field.Field
	Kind  Kind
	// Index is the 1-based ordinal of the element a FlatDispatching node was
	// processing, 0 otherwise.
	Index int
}

// String renders the frame as "kind(field)" with an optional "#index".
func (f Frame) String() string {
	s := f.Kind.String() + "(" + f.Field.String() + ")"
	if f.Index > 0 {
		s += fmt.Sprintf("#%d", f.Index)
	}

	return s
}

// Fault is the error returned by Process. It keeps the original error intact
// and records the field hierarchy it crossed, innermost frame first.
type Fault struct {
	Kind FaultKind
	// Origin is the field of the node where the failure was raised.
	Origin field.Field
	Err    error
	Frames []Frame
}

// Error returns the original message prefixed with the origin and followed by
// the virtual call stack.
func (e *Fault) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s fault at %s: %v", strings.ToLower(e.Kind.String()), e.Origin, e.Err)

	if len(e.Frames) > 0 {
		sb.WriteString(" [")

		for i, fr := range e.Frames {
			if i > 0 {
				sb.WriteString(" < ")
			}

			sb.WriteString(fr.String())
		}

		sb.WriteString("]")
	}

	return sb.String()
}

// Unwrap returns the original error.
func (e *Fault) Unwrap() error { return e.Err }

// Is matches the sentinel of the fault kind, so errors.Is(err, ErrWrite)
// holds for any write fault.
func (e *Fault) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// StackOf returns the frames recorded on the fault carried by err.
func StackOf(err error) []Frame {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Frames
	}

	return nil
}

// raise wraps err as a fault unless it already carries one.
func raise(kind FaultKind, origin field.Field, err error) error {
	var fault *Fault
	if errors.As(err, &fault) {
		return err
	}

	return &Fault{Kind: kind, Origin: origin, Err: err}
}

// annotate appends the frame of the composite node f to the fault carried by
// err. err must come from raise. A frame equal to the last recorded one is
// collapsed, so a node split in two on the same field reads as one level.
func annotate(err error, f field.Field, kind Kind, index int) error {
	var fault *Fault
	if !errors.As(err, &fault) {
		return err
	}

	fr := Frame{Field: f, Kind: kind, Index: index}
	if n := len(fault.Frames); n > 0 && fault.Frames[n-1] == fr {
		return err
	}

	fault.Frames = append(fault.Frames, fr)

	return err
}
