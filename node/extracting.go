package node

import "fieldline/field"

// Extractor derives a value from a source. ok reports whether a value is
// present; an absent value is never written.
type Extractor[S, R any] func(source S) (value R, ok bool, err error)

// Extracting extracts a value from the source and writes it into the context
// with a writer dedicated to the value type.
type Extracting[S, C, R any] struct {
	f       field.Field
	extract Extractor[S, R]
	write   func(R, C) error
}

// Extract returns a leaf writing get(source) with write.
func Extract[S, C, R any](f field.Field, get func(S) R, write func(R, C) error) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: f, extract: plain(get), write: write}
}

// TryExtract is Extract with a fallible getter.
func TryExtract[S, C, R any](f field.Field, get func(S) (R, error), write func(R, C) error) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: f, extract: fallible(get), write: write}
}

// Lookup is Extract with a getter reporting presence, like a map lookup.
func Lookup[S, C, R any](f field.Field, get func(S) (R, bool), write func(R, C) error) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: f, extract: optional(get), write: write}
}

func (n *Extracting[S, C, R]) Field() field.Field     { return n.f }
func (n *Extracting[S, C, R]) Kind() Kind             { return KindExtracting }
func (n *Extracting[S, C, R]) Children() []Descriptor { return nil }

// Extractor returns the composed extraction function.
func (n *Extracting[S, C, R]) Extractor() Extractor[S, R] { return n.extract }

// Process extracts the value and writes it when present.
func (n *Extracting[S, C, R]) Process(source S, ctx C) error {
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
func (n *Extracting[S, C, R]) WithWriter(w func(R, C) error) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: n.f, extract: n.extract, write: w}
}

// Decorate returns a node applying fn to every extracted value.
func (n *Extracting[S, C, R]) Decorate(fn func(R) R) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: n.f, extract: decorate(n.extract, fn), write: n.write}
}

// PostFilter returns a node that still extracts but writes only values
// accepted by predicate.
func (n *Extracting[S, C, R]) PostFilter(predicate func(R) bool) *Extracting[S, C, R] {
	w := n.write

	return n.WithWriter(func(v R, c C) error {
		if !predicate(v) {
			return nil
		}

		return w(v, c)
	})
}

// WithExtractionErrorHandler returns a node recovering from extraction
// failures with the value supplied by h.
func (n *Extracting[S, C, R]) WithExtractionErrorHandler(h func(err error, source S) (R, bool)) *Extracting[S, C, R] {
	return &Extracting[S, C, R]{f: n.f, extract: recoverWith(n.extract, h), write: n.write}
}

// SilenceExtractionErrors returns a node treating extraction failures as an
// absent value.
func (n *Extracting[S, C, R]) SilenceExtractionErrors() *Extracting[S, C, R] {
	return n.WithExtractionErrorHandler(silentRecovery[S, R](n.f))
}

// Filter guards the whole node with predicate. The result is a Simple node.
func (n *Extracting[S, C, R]) Filter(predicate func(S, C) bool) *Simple[S, C] {
	return guard(n.f, n, predicate)
}

// FilterSource guards the whole node with a predicate on the source.
func (n *Extracting[S, C, R]) FilterSource(predicate func(S) bool) *Simple[S, C] {
	return guard(n.f, n, func(s S, _ C) bool { return predicate(s) })
}

// WithErrorHandler returns a Simple node handing every fault to h.
func (n *Extracting[S, C, R]) WithErrorHandler(h func(err error, source S, ctx C)) *Simple[S, C] {
	return erase[S, C](n).WithErrorHandler(h)
}

// SilenceErrors returns a Simple node that logs and drops every fault.
func (n *Extracting[S, C, R]) SilenceErrors() *Simple[S, C] {
	return erase[S, C](n).SilenceErrors()
}

func plain[S, R any](get func(S) R) Extractor[S, R] {
	return func(s S) (R, bool, error) {
		if IsAbsent(s) {
			var zero R
			return zero, false, nil
		}

		v := get(s)

		return v, !IsAbsent(v), nil
	}
}

func fallible[S, R any](get func(S) (R, error)) Extractor[S, R] {
	return func(s S) (R, bool, error) {
		var zero R
		if IsAbsent(s) {
			return zero, false, nil
		}

		v, err := get(s)
		if err != nil {
			return zero, false, err
		}

		return v, !IsAbsent(v), nil
	}
}

func optional[S, R any](get func(S) (R, bool)) Extractor[S, R] {
	return func(s S) (R, bool, error) {
		if IsAbsent(s) {
			var zero R
			return zero, false, nil
		}

		v, ok := get(s)

		return v, ok && !IsAbsent(v), nil
	}
}

func decorate[S, R any](extract Extractor[S, R], fn func(R) R) Extractor[S, R] {
	return func(s S) (R, bool, error) {
		v, ok, err := extract(s)
		if err != nil || !ok {
			return v, ok, err
		}

		v = fn(v)

		return v, !IsAbsent(v), nil
	}
}

func recoverWith[S, R any](extract Extractor[S, R], h func(error, S) (R, bool)) Extractor[S, R] {
	return func(s S) (R, bool, error) {
		v, ok, err := extract(s)
		if err != nil {
			v, ok = h(err, s)
			return v, ok, nil
		}

		return v, ok, nil
	}
}

func silentRecovery[S, R any](f field.Field) func(error, S) (R, bool) {
	return func(err error, _ S) (R, bool) {
		logSilenced(f, FaultExtraction, err)

		var zero R

		return zero, false
	}
}
