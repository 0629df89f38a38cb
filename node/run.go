package node

import (
	"errors"

	"fieldline/field"
)

// Run processes source against a fresh context and returns the context. The
// context is returned even on failure, holding the mutations applied so far.
func Run[S, C any](n Node[S, C], source S, newCtx func() C) (C, error) {
	ctx := newCtx()
	err := n.Process(source, ctx)

	return ctx, err
}

// Func binds n and newCtx into a conversion function.
func Func[S, C any](n Node[S, C], newCtx func() C) func(S) (C, error) {
	return func(source S) (C, error) { return Run(n, source, newCtx) }
}

// BiFunc returns a function processing into a caller-supplied context.
func BiFunc[S, C any](n Node[S, C]) func(S, C) (C, error) {
	return func(source S, ctx C) (C, error) {
		err := n.Process(source, ctx)
		return ctx, err
	}
}

// SkipChildren is returned by a WalkFunc to skip the children of the node it
// was called with.
var SkipChildren = errors.New("skip children")

// WalkFunc is called by Walk for every node. path holds the fields from the
// root down to d, both included.
type WalkFunc func(path []field.Field, d Descriptor) error

// Walk visits the tree rooted at d depth-first, parents before children.
func Walk(d Descriptor, fn WalkFunc) error {
	err := walk(nil, d, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}

	return err
}

func walk(parent []field.Field, d Descriptor, fn WalkFunc) error {
	path := append(parent[:len(parent):len(parent)], d.Field())

	if err := fn(path, d); err != nil {
		return err
	}

	for _, child := range d.Children() {
		if err := walk(path, child, fn); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}

	return nil
}

// Collect returns the fields of the tree rooted at d accepted by keep, in
// walk order.
func Collect(d Descriptor, keep func(field.Field) bool) []field.Field {
	var out []field.Field

	_ = Walk(d, func(_ []field.Field, n Descriptor) error {
		if keep(n.Field()) {
			out = append(out, n.Field())
		}

		return nil
	})

	return out
}
