package node

import (
	"fmt"
	"iter"
	"slices"

	"fieldline/field"
)

// Builder assembles a Dispatching node. SI and CI are the source and context
// types the built node accepts; SO and CO are the types its children see.
//
// Operations changing SO or CO are package functions returning a new builder
// generation with no children, since children are typed against the output of
// the transforms. Field and Fields extend the current generation.
type Builder[SI, CI, SO, CO any] struct {
	f          field.Field
	mapSource  func(SI) (SO, error)
	mapContext func(CI) (CO, error)
	children   []Node[SO, CO]
}

// Of returns a builder rooted at f with identity transforms.
func Of[S, C any](f field.Field) *Builder[S, C, S, C] {
	return &Builder[S, C, S, C]{f: f, mapSource: identity[S], mapContext: identity[C]}
}

// OfSourceType re-types the source of b to X with an identity transform.
func OfSourceType[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO]) *Builder[X, CI, X, CO] {
	return &Builder[X, CI, X, CO]{f: b.f, mapSource: identity[X], mapContext: b.mapContext}
}

// OfContextType re-types the context of b to X with an identity transform.
func OfContextType[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO]) *Builder[SI, X, SO, X] {
	return &Builder[SI, X, SO, X]{f: b.f, mapSource: b.mapSource, mapContext: identity[X]}
}

// WithSourceMap replaces the source transform of b with fn.
func WithSourceMap[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(SI) (X, error)) *Builder[SI, CI, X, CO] {
	return &Builder[SI, CI, X, CO]{f: b.f, mapSource: fn, mapContext: b.mapContext}
}

// WithContextMap replaces the context transform of b with fn.
func WithContextMap[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(CI) (X, error)) *Builder[SI, CI, SO, X] {
	return &Builder[SI, CI, SO, X]{f: b.f, mapSource: b.mapSource, mapContext: fn}
}

// WithContextMapF is WithContextMap with the builder's field passed to fn.
func WithContextMapF[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(field.Field, CI) (X, error)) *Builder[SI, CI, SO, X] {
	return WithContextMap(b, bindField(b.f, fn))
}

// MapSource composes fn after the source transform of b.
func MapSource[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(SO) (X, error)) *Builder[SI, CI, X, CO] {
	return &Builder[SI, CI, X, CO]{f: b.f, mapSource: compose(b.mapSource, fn), mapContext: b.mapContext}
}

// MapContext composes fn after the context transform of b.
func MapContext[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(CO) (X, error)) *Builder[SI, CI, SO, X] {
	return &Builder[SI, CI, SO, X]{f: b.f, mapSource: b.mapSource, mapContext: compose(b.mapContext, fn)}
}

// MapContextF is MapContext with the builder's field passed to fn.
func MapContextF[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(field.Field, CO) (X, error)) *Builder[SI, CI, SO, X] {
	return MapContext(b, bindField(b.f, fn))
}

// FlatMap turns b into a builder running a single child once per element of
// the slice returned by fn.
func FlatMap[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(SO) ([]X, error)) *FlatBuilder[SI, CI, X, CO] {
	return FlatMapSeq(b, func(so SO) (iter.Seq[X], error) {
		items, err := fn(so)
		if err != nil || items == nil {
			return nil, err
		}

		return slices.Values(items), nil
	})
}

// FlatMapSeq is FlatMap for a transform yielding a sequence.
func FlatMapSeq[X, SI, CI, SO, CO any](b *Builder[SI, CI, SO, CO], fn func(SO) (iter.Seq[X], error)) *FlatBuilder[SI, CI, X, CO] {
	return &FlatBuilder[SI, CI, X, CO]{f: b.f, items: compose(b.mapSource, fn), mapContext: b.mapContext}
}

// Field appends child to the pending children.
func (b *Builder[SI, CI, SO, CO]) Field(child Node[SO, CO]) *Builder[SI, CI, SO, CO] {
	b.children = append(b.children, child)
	return b
}

// Fields appends children in order.
func (b *Builder[SI, CI, SO, CO]) Fields(children ...Node[SO, CO]) *Builder[SI, CI, SO, CO] {
	b.children = append(b.children, children...)
	return b
}

// Build returns a Dispatching node over a snapshot of the pending children.
// Children added afterwards do not affect the returned node.
func (b *Builder[SI, CI, SO, CO]) Build() *Dispatching[SI, CI, SO, CO] {
	return &Dispatching[SI, CI, SO, CO]{
		f:          b.f,
		mapSource:  b.mapSource,
		mapContext: b.mapContext,
		children:   slices.Clone(b.children),
	}
}

// PipeTo returns a Dispatching node with child as its only child. It fails
// with ErrInvalidBuilderState when children were already added.
func (b *Builder[SI, CI, SO, CO]) PipeTo(child Node[SO, CO]) (*Dispatching[SI, CI, SO, CO], error) {
	if len(b.children) > 0 {
		return nil, &Fault{
			Kind:   FaultInvalidState,
			Origin: b.f,
			Err:    fmt.Errorf("pipe to %s: %d children already added", child.Field(), len(b.children)),
		}
	}

	return &Dispatching[SI, CI, SO, CO]{
		f:          b.f,
		mapSource:  b.mapSource,
		mapContext: b.mapContext,
		children:   []Node[SO, CO]{child},
	}, nil
}

// MustPipeTo is PipeTo panicking on error.
func (b *Builder[SI, CI, SO, CO]) MustPipeTo(child Node[SO, CO]) *Dispatching[SI, CI, SO, CO] {
	n, err := b.PipeTo(child)
	if err != nil {
		panic(err)
	}

	return n
}

// FlatBuilder is the restricted builder returned by FlatMap. It only
// supports PipeTo, since each element needs exactly one destination.
type FlatBuilder[SI, CI, SO, CO any] struct {
	f          field.Field
	items      func(SI) (iter.Seq[SO], error)
	mapContext func(CI) (CO, error)
}

// PipeTo returns a FlatDispatching node running child once per element.
func (b *FlatBuilder[SI, CI, SO, CO]) PipeTo(child Node[SO, CO]) *FlatDispatching[SI, CI, SO, CO] {
	return &FlatDispatching[SI, CI, SO, CO]{
		f:          b.f,
		items:      b.items,
		mapContext: b.mapContext,
		child:      child,
	}
}

func compose[A, B, X any](first func(A) (B, error), then func(B) (X, error)) func(A) (X, error) {
	return func(a A) (X, error) {
		b, err := first(a)
		if err != nil {
			var zero X
			return zero, err
		}

		return then(b)
	}
}

func bindField[A, X any](f field.Field, fn func(field.Field, A) (X, error)) func(A) (X, error) {
	return func(a A) (X, error) { return fn(f, a) }
}
