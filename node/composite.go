package node

import (
	"iter"

	"fieldline/field"
)

// Chaining delegates to a single child while exposing it as a child, e.g. to
// attach a field to an existing subtree.
type Chaining[S, C any] struct {
	f     field.Field
	child Node[S, C]
}

// Chain returns a node forwarding every present source to child.
func Chain[S, C any](f field.Field, child Node[S, C]) *Chaining[S, C] {
	return &Chaining[S, C]{f: f, child: child}
}

func (n *Chaining[S, C]) Field() field.Field     { return n.f }
func (n *Chaining[S, C]) Kind() Kind             { return KindChaining }
func (n *Chaining[S, C]) Children() []Descriptor { return []Descriptor{n.child} }

// Process forwards source and ctx unchanged. An absent source is skipped.
func (n *Chaining[S, C]) Process(source S, ctx C) error {
	if IsAbsent(source) {
		return nil
	}

	if err := n.child.Process(source, ctx); err != nil {
		return annotate(raise(FaultWrite, n.child.Field(), err), n.f, KindChaining, 0)
	}

	return nil
}

// Dispatching transforms the source and the context once and forwards the
// results to every child in registration order.
type Dispatching[SI, CI, SO, CO any] struct {
	f          field.Field
	mapSource  func(SI) (SO, error)
	mapContext func(CI) (CO, error)
	children   []Node[SO, CO]
}

// Dispatch returns a node forwarding source and context unchanged to children.
func Dispatch[S, C any](f field.Field, children ...Node[S, C]) *Dispatching[S, C, S, C] {
	return &Dispatching[S, C, S, C]{
		f:          f,
		mapSource:  identity[S],
		mapContext: identity[C],
		children:   append([]Node[S, C](nil), children...),
	}
}

func (n *Dispatching[SI, CI, SO, CO]) Field() field.Field     { return n.f }
func (n *Dispatching[SI, CI, SO, CO]) Kind() Kind             { return KindDispatching }
func (n *Dispatching[SI, CI, SO, CO]) Children() []Descriptor { return descriptors(n.children) }

// Process skips an absent source; otherwise it runs both transforms and every
// child with their results. The first failure stops processing.
func (n *Dispatching[SI, CI, SO, CO]) Process(source SI, ctx CI) error {
	if IsAbsent(source) {
		return nil
	}

	s1, err := n.mapSource(source)
	if err != nil {
		return annotate(raise(FaultTransform, n.f, err), n.f, KindDispatching, 0)
	}

	c1, err := n.mapContext(ctx)
	if err != nil {
		return annotate(raise(FaultTransform, n.f, err), n.f, KindDispatching, 0)
	}

	for _, child := range n.children {
		if err := child.Process(s1, c1); err != nil {
			return annotate(raise(FaultWrite, child.Field(), err), n.f, KindDispatching, 0)
		}
	}

	return nil
}

// FlatDispatching turns the source into a sequence and runs its child once
// per element.
type FlatDispatching[SI, CI, SO, CO any] struct {
	f          field.Field
	items      func(SI) (iter.Seq[SO], error)
	mapContext func(CI) (CO, error)
	child      Node[SO, CO]
}

func (n *FlatDispatching[SI, CI, SO, CO]) Field() field.Field     { return n.f }
func (n *FlatDispatching[SI, CI, SO, CO]) Kind() Kind             { return KindFlatDispatching }
func (n *FlatDispatching[SI, CI, SO, CO]) Children() []Descriptor { return []Descriptor{n.child} }

// Process skips an absent source; otherwise it runs the child with every
// element of the sequence. The context transform runs once, before the first
// element, so an empty sequence leaves the context untouched.
func (n *FlatDispatching[SI, CI, SO, CO]) Process(source SI, ctx CI) error {
	if IsAbsent(source) {
		return nil
	}

	items, err := n.items(source)
	if err != nil {
		return annotate(raise(FaultTransform, n.f, err), n.f, KindFlatDispatching, 0)
	}

	if items == nil {
		return nil
	}

	var (
		c1    CO
		index int
	)

	for item := range items {
		index++

		if index == 1 {
			if c1, err = n.mapContext(ctx); err != nil {
				return annotate(raise(FaultTransform, n.f, err), n.f, KindFlatDispatching, index)
			}
		}

		if err := n.child.Process(item, c1); err != nil {
			return annotate(raise(FaultWrite, n.child.Field(), err), n.f, KindFlatDispatching, index)
		}
	}

	return nil
}
