package node

import "fieldline/field"

// Untyped extracts a value of type R but writes it with a writer accepting
// any value. The writer is responsible for dispatching on the runtime
// representation, which lets Map change R without touching the writer.
type Untyped[S, C, R any] struct {
	f       field.Field
	extract Extractor[S, R]
	write   func(any, C) error
}

// ExtractAny returns an untyped leaf writing get(source) with write.
func ExtractAny[S, C, R any](f field.Field, get func(S) R, write func(any, C) error) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: f, extract: plain(get), write: write}
}

// TryExtractAny is ExtractAny with a fallible getter.
func TryExtractAny[S, C, R any](f field.Field, get func(S) (R, error), write func(any, C) error) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: f, extract: fallible(get), write: write}
}

// LookupAny is ExtractAny with a getter reporting presence.
func LookupAny[S, C, R any](f field.Field, get func(S) (R, bool), write func(any, C) error) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: f, extract: optional(get), write: write}
}

// Map returns a node whose extracted value is fn applied to the value of n.
// The writer is kept as is. A failing fn is an extraction fault.
func Map[S, C, R, U any](n *Untyped[S, C, R], fn func(R) (U, error)) *Untyped[S, C, U] {
	extract := n.extract

	return &Untyped[S, C, U]{
		f: n.f,
		extract: func(s S) (U, bool, error) {
			var zero U

			v, ok, err := extract(s)
			if err != nil || !ok {
				return zero, false, err
			}

			u, err := fn(v)
			if err != nil {
				return zero, false, err
			}

			return u, !IsAbsent(u), nil
		},
		write: n.write,
	}
}

func (n *Untyped[S, C, R]) Field() field.Field     { return n.f }
func (n *Untyped[S, C, R]) Kind() Kind             { return KindUntyped }
func (n *Untyped[S, C, R]) Children() []Descriptor { return nil }

// Extractor returns the composed extraction function.
func (n *Untyped[S, C, R]) Extractor() Extractor[S, R] { return n.extract }

// Process extracts the value and writes it when present.
func (n *Untyped[S, C, R]) Process(source S, ctx C) error {
	value, ok, err := n.extract(source)
	if err != nil {
		return raise(FaultExtraction, n.f, err)
	}

	if !ok {
		return nil
	}

	if err := n.write(value, ctx); err != nil {
		return raise(FaultWrite, n.f, err)
	}

	return nil
}

// WithWriter returns a node writing with w.
func (n *Untyped[S, C, R]) WithWriter(w func(any, C) error) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: n.f, extract: n.extract, write: w}
}

// Decorate returns a node applying fn to every extracted value.
func (n *Untyped[S, C, R]) Decorate(fn func(R) R) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: n.f, extract: decorate(n.extract, fn), write: n.write}
}

// PostFilter returns a typed node writing only values accepted by predicate.
func (n *Untyped[S, C, R]) PostFilter(predicate func(R) bool) *Extracting[S, C, R] {
	w := n.write

	return &Extracting[S, C, R]{
		f:       n.f,
		extract: n.extract,
		write: func(v R, c C) error {
			if !predicate(v) {
				return nil
			}

			return w(v, c)
		},
	}
}

// WithExtractionErrorHandler returns a node recovering from extraction
// failures with the value supplied by h.
func (n *Untyped[S, C, R]) WithExtractionErrorHandler(h func(err error, source S) (R, bool)) *Untyped[S, C, R] {
	return &Untyped[S, C, R]{f: n.f, extract: recoverWith(n.extract, h), write: n.write}
}

// SilenceExtractionErrors returns a node treating extraction failures as an
// absent value.
func (n *Untyped[S, C, R]) SilenceExtractionErrors() *Untyped[S, C, R] {
	return n.WithExtractionErrorHandler(silentRecovery[S, R](n.f))
}

// Filter guards the whole node with predicate. The result is a Simple node.
func (n *Untyped[S, C, R]) Filter(predicate func(S, C) bool) *Simple[S, C] {
	return guard(n.f, n, predicate)
}

// FilterSource guards the whole node with a predicate on the source.
func (n *Untyped[S, C, R]) FilterSource(predicate func(S) bool) *Simple[S, C] {
	return guard(n.f, n, func(s S, _ C) bool { return predicate(s) })
}

// WithErrorHandler returns a Simple node handing every fault to h.
func (n *Untyped[S, C, R]) WithErrorHandler(h func(err error, source S, ctx C)) *Simple[S, C] {
	return erase[S, C](n).WithErrorHandler(h)
}

// SilenceErrors returns a Simple node that logs and drops every fault.
func (n *Untyped[S, C, R]) SilenceErrors() *Simple[S, C] {
	return erase[S, C](n).SilenceErrors()
}
