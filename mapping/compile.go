package mapping

import (
	"errors"
	"fmt"
	"iter"

	"fieldline/field"
	"fieldline/node"
	"fieldline/target"
)

// ErrUnknownMapping is returned by Set.Run for a name no mapping declares.
var ErrUnknownMapping = errors.New("unknown mapping")

// Option configures Compile.
type Option func(*options)

type options struct {
	publicOnly bool
}

// PublicOnly leaves private fields out of the compiled pipelines.
func PublicOnly() Option {
	return func(o *options) { o.publicOnly = true }
}

// Set holds the compiled pipelines of a mapping file.
type Set struct {
	names []string
	nodes map[string]node.Node[any, target.Map]
}

// Compile validates mf and builds one pipeline per mapping. A nil registry
// stands for NewRegistry().
func Compile(mf *File, registry *Registry, opts ...Option) (*Set, error) {
	if registry == nil {
		registry = NewRegistry()
	}

	res := Validate(mf, registry)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("invalid mapping file: %w", err)
	}

	log := node.Logger()

	for _, w := range res.Warnings {
		log.Warn().Str("code", w.Code).Msg(w.String())
	}

	c := compiler{registry: registry}
	c.style, _ = field.ParseStyle(mf.Naming)

	for _, opt := range opts {
		opt(&c.options)
	}

	set := &Set{nodes: make(map[string]node.Node[any, target.Map], len(mf.Mappings))}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]

		children, err := c.fields(m.expanded())
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", m.Name, err)
		}

		root := node.Of[any, target.Map](m.RootField(c.style)).Fields(children...).Build()

		set.names = append(set.names, m.Name)
		set.nodes[m.Name] = root

		log.Debug().
			Str("mapping", m.Name).
			Int("fields", len(children)).
			Msg("mapping compiled")
	}

	return set, nil
}

// Names returns the mapping names in file order.
func (s *Set) Names() []string { return s.names }

// Get returns the pipeline compiled for the mapping name.
func (s *Set) Get(name string) (node.Node[any, target.Map], bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// Run converts source with the mapping name.
func (s *Set) Run(name string, source any) (target.Map, error) {
	n, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapping, name)
	}

	return node.Run(n, source, target.New)
}

// Filters returns the fields of the mapping name flagged as filters.
func (s *Set) Filters(name string) []field.Field {
	n, ok := s.nodes[name]
	if !ok {
		return nil
	}

	return node.Collect(n, field.Field.HasFilter)
}

type compiler struct {
	options

	registry *Registry
	style    field.Style
}

func (c *compiler) fields(fields []FieldMapping) ([]node.Node[any, target.Map], error) {
	out := make([]node.Node[any, target.Map], 0, len(fields))

	for i := range fields {
		fm := &fields[i]
		if c.publicOnly && fm.Private {
			continue
		}

		n, err := c.field(fm)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fm.Source, err)
		}

		out = append(out, n)
	}

	return out, nil
}

func (c *compiler) field(fm *FieldMapping) (node.Node[any, target.Map], error) {
	fp, err := ParsePath(fm.Source)
	if err != nil {
		return nil, err
	}

	f := fm.Field(c.style)

	if head, tail, ok := fp.SplitAtSlice(); ok {
		return c.sequence(f, head, tail, fm)
	}

	if len(fm.Fields) > 0 {
		return c.object(f, fp, fm.Fields)
	}

	get := func(s any) (any, bool) { return valueAt(s, fp, fm.Default) }

	return leaf(c, fm, node.LookupAny(f, get, target.PutAny(f)))
}

// object writes the fields of a nested source value into a nested map. The
// nested map is only created for a present value.
func (c *compiler) object(f field.Field, fp FieldPath, fields []FieldMapping) (node.Node[any, target.Map], error) {
	children, err := c.fields(fields)
	if err != nil {
		return nil, err
	}

	inner := node.MapContext(node.Of[any, target.Map](f), target.Child(f)).Fields(children...).Build()

	return node.MapSource(node.Of[any, target.Map](f), func(s any) (any, error) {
		v, ok := resolve(s, fp.Segments)
		if !ok {
			return nil, nil
		}

		if isSequence(v) {
			return nil, fmt.Errorf("%s holds a sequence, map it as %s[]", fp, fp)
		}

		return v, nil
	}).PipeTo(inner)
}

// sequence writes a list with one entry per element selected by head. tail
// selects the value taken from every element.
func (c *compiler) sequence(f field.Field, head, tail FieldPath, fm *FieldMapping) (node.Node[any, target.Map], error) {
	items := func(s any) (iter.Seq[any], error) {
		v, ok := resolve(s, head.Segments)
		if !ok {
			return nil, nil
		}

		seq, err := elements(v)
		if err != nil || seq == nil || len(tail.Segments) == 0 {
			return seq, err
		}

		return func(yield func(any) bool) {
			for e := range seq {
				v, _ := resolve(e, tail.Segments)
				if !yield(v) {
					return
				}
			}
		}, nil
	}

	flat := node.FlatMapSeq(node.MapContext(node.Of[any, target.Map](f), target.List(f)), items)

	if len(fm.Fields) > 0 {
		children, err := c.fields(fm.Fields)
		if err != nil {
			return nil, err
		}

		return flat.PipeTo(node.MapContext(node.Of[any, *target.Slot](f), target.Element).Fields(children...).Build()), nil
	}

	get := func(e any) (any, bool) { return valueAt(e, FieldPath{}, fm.Default) }

	n, err := leaf(c, fm, node.LookupAny(f, get, target.AddAny))
	if err != nil {
		return nil, err
	}

	return flat.PipeTo(n), nil
}

// leaf applies the transforms and the omit_empty option of fm to n.
func leaf[C any](c *compiler, fm *FieldMapping, n *node.Untyped[any, C, any]) (node.Node[any, C], error) {
	for _, name := range fm.Transform {
		fn := c.registry.Get(name)
		if fn == nil {
			return nil, fmt.Errorf("unknown transform %q", name)
		}

		n = node.Map[any, C, any, any](n, fn)
	}

	if fm.OmitEmpty {
		return n.PostFilter(func(v any) bool { return !isEmpty(v) }), nil
	}

	return n, nil
}

// valueAt resolves fp from s, falling back to def for a missing or nil value.
func valueAt(s any, fp FieldPath, def any) (any, bool) {
	v, ok := resolve(s, fp.Segments)
	if !ok || node.IsAbsent(v) {
		return def, def != nil
	}

	return v, true
}
