// Package doc is a minimal ordered element tree used as a pipeline context
// when the output is a markup document. Elements keep attribute and child
// order so the rendered XML follows the pipeline's registration order.
package doc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"slices"

	"fieldline/field"
	"fieldline/primitive"
)

// Document holds a single root element.
type Document struct {
	Root *Element
}

// New returns an empty document.
func New() *Document { return &Document{} }

// Attr is a name-value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is a named node with ordered attributes, optional text and child
// elements.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element

	parent *Element
}

// NewElement returns a detached element.
func NewElement(name string) *Element { return &Element{Name: name} }

// Parent returns the element e is attached to, or nil.
func (e *Element) Parent() *Element { return e.parent }

// AddChild appends a new child element named name and returns it.
func (e *Element) AddChild(name string) *Element {
	child := &Element{Name: name, parent: e}
	e.Children = append(e.Children, child)

	return child
}

// SetAttr sets or replaces the attribute name.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}

	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the attribute name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// Find returns the direct children named name.
func (e *Element) Find(name string) []*Element {
	var out []*Element

	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

// IsEmpty reports whether e has no attributes, text or children.
func (e *Element) IsEmpty() bool {
	return len(e.Attrs) == 0 && e.Text == "" && len(e.Children) == 0
}

// Detach removes e from its parent.
func (e *Element) Detach() {
	if e.parent == nil {
		return
	}

	e.parent.Children = slices.DeleteFunc(e.parent.Children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Root returns a context transform yielding the root element of a document,
// named after the external name of f. An existing root with the same name is
// reused.
func Root(f field.Field) func(*Document) (*Element, error) {
	name := f.ExternalName()

	return func(d *Document) (*Element, error) {
		switch {
		case d.Root == nil:
			d.Root = NewElement(name)
		case d.Root.Name != name:
			return nil, fmt.Errorf("document root is %q, not %q", d.Root.Name, name)
		}

		return d.Root, nil
	}
}

// Child returns a context transform appending a child element named after
// the external name of f.
func Child(f field.Field) func(*Element) (*Element, error) {
	name := f.ExternalName()

	return func(e *Element) (*Element, error) {
		return e.AddChild(name), nil
	}
}

// Attribute returns an untyped writer setting the attribute named after the
// external name of f.
func Attribute(f field.Field) func(any, *Element) error {
	name := f.ExternalName()

	return func(v any, e *Element) error {
		text, err := primitive.Format(v)
		if err != nil {
			return err
		}

		e.SetAttr(name, text)

		return nil
	}
}

// Text returns an untyped writer appending a child element named after the
// external name of f and holding the value as text.
func Text(f field.Field) func(any, *Element) error {
	name := f.ExternalName()

	return func(v any, e *Element) error {
		text, err := primitive.Format(v)
		if err != nil {
			return err
		}

		e.AddChild(name).Text = text

		return nil
	}
}

// Content is an untyped writer setting the text of the context element.
func Content(v any, e *Element) error {
	text, err := primitive.Format(v)
	if err != nil {
		return err
	}

	e.Text = text

	return nil
}

// DetachIfEmpty removes e from its parent when nothing was written to it. It
// is meant to run as the last child of the node that created e.
func DetachIfEmpty(e *Element) error {
	if e.IsEmpty() {
		e.Detach()
	}

	return nil
}

// XML renders the document. A non-empty indent pretty-prints it.
func (d *Document) XML(indent string) (string, error) {
	var buf bytes.Buffer

	enc := xml.NewEncoder(&buf)
	if indent != "" {
		enc.Indent("", indent)
	}

	if d.Root != nil {
		if err := d.Root.encode(enc); err != nil {
			return "", err
		}
	}

	if err := enc.Flush(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("encode %s: %w", e.Name, err)
	}

	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}

	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
