package node

import "fieldline/field"

// Simple wraps a raw consumer of the source and the context.
type Simple[S, C any] struct {
	f        field.Field
	consumer func(S, C) error
}

// NewSimple returns a leaf running consumer on every Process call.
func NewSimple[S, C any](f field.Field, consumer func(S, C) error) *Simple[S, C] {
	return &Simple[S, C]{f: f, consumer: consumer}
}

// ContextOf returns a leaf that ignores the source and works on the context
// only, e.g. to post-process an element built by its siblings.
func ContextOf[S, C any](f field.Field, fn func(C) error) *Simple[S, C] {
	return NewSimple(f, func(_ S, c C) error { return fn(c) })
}

func (n *Simple[S, C]) Field() field.Field     { return n.f }
func (n *Simple[S, C]) Kind() Kind             { return KindSimple }
func (n *Simple[S, C]) Children() []Descriptor { return nil }

// Process runs the consumer. A failure is returned as a write fault.
func (n *Simple[S, C]) Process(source S, ctx C) error {
	if err := n.consumer(source, ctx); err != nil {
		return raise(FaultWrite, n.f, err)
	}

	return nil
}

// WithErrorHandler returns a node handing every failure to h instead of
// returning it.
func (n *Simple[S, C]) WithErrorHandler(h func(err error, source S, ctx C)) *Simple[S, C] {
	inner := n.consumer

	return NewSimple(n.f, func(s S, c C) error {
		if err := inner(s, c); err != nil {
			h(err, s, c)
		}

		return nil
	})
}

// SilenceErrors returns a node that logs and drops every failure.
func (n *Simple[S, C]) SilenceErrors() *Simple[S, C] {
	return n.WithErrorHandler(func(err error, _ S, _ C) {
		logSilenced(n.f, FaultWrite, err)
	})
}

// Filter returns a node processing only pairs accepted by predicate.
func (n *Simple[S, C]) Filter(predicate func(S, C) bool) *Simple[S, C] {
	return guard(n.f, n, predicate)
}

// FilterSource returns a node processing only sources accepted by predicate.
func (n *Simple[S, C]) FilterSource(predicate func(S) bool) *Simple[S, C] {
	return guard(n.f, n, func(s S, _ C) bool { return predicate(s) })
}

func guard[S, C any](f field.Field, target Node[S, C], predicate func(S, C) bool) *Simple[S, C] {
	return NewSimple(f, func(s S, c C) error {
		if !predicate(s, c) {
			return nil
		}

		return target.Process(s, c)
	})
}

func erase[S, C any](n Node[S, C]) *Simple[S, C] {
	return NewSimple(n.Field(), n.Process)
}
