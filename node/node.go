// Package node provides the generic labeled tree value type used as the
// output representation for every synthesized source-control configuration.
//
// A tree is assembled bottom-up: build children as values first, then attach
// them to the parent. Child order is significant because the consuming
// systems read configuration elements positionally; attribute order is not.
package node

import "strconv"

// Node is one element of a configuration tree.
type Node struct {
	// Label is the element name. It must be non-empty.
	Label string

	// Attrs holds the element attributes. May be nil.
	Attrs map[string]string

	// Children holds sub-elements in emission order.
	Children []*Node

	// Value is the optional scalar payload. HasValue distinguishes an empty
	// scalar from no scalar at all.
	Value    string
	HasValue bool
}

// Option configures a Node during construction.
type Option func(*Node)

// New creates a node with the given label and applies the options in order.
func New(label string, opts ...Option) *Node {
	n := &Node{Label: label}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// WithAttr sets an attribute on the new node.
func WithAttr(key, value string) Option {
	return func(n *Node) {
		n.Attr(key, value)
	}
}

// WithValue sets the scalar value of the new node.
func WithValue(value string) Option {
	return func(n *Node) {
		n.SetValue(value)
	}
}

// WithChildren appends the given children to the new node.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.Append(children...)
	}
}

// Attr sets a single attribute and returns the node for chaining.
func (n *Node) Attr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}

	n.Attrs[key] = value

	return n
}

// SetValue sets the scalar value and returns the node for chaining.
func (n *Node) SetValue(value string) *Node {
	n.Value = value
	n.HasValue = true

	return n
}

// Append adds children in order and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)

	return n
}

// AppendText adds a scalar leaf child and returns the parent for chaining.
func (n *Node) AppendText(label, value string) *Node {
	return n.Append(New(label, WithValue(value)))
}

// AppendBool adds a scalar leaf child holding "true" or "false".
func (n *Node) AppendBool(label string, value bool) *Node {
	return n.AppendText(label, strconv.FormatBool(value))
}

// AppendInt adds a scalar leaf child holding the base-10 representation.
func (n *Node) AppendInt(label string, value int) *Node {
	return n.AppendText(label, strconv.Itoa(value))
}

// Child returns the first child with the given label, or nil.
func (n *Node) Child(label string) *Node {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}

	return nil
}

// All returns every child with the given label, in order.
func (n *Node) All(label string) []*Node {
	var out []*Node

	for _, c := range n.Children {
		if c.Label == label {
			out = append(out, c)
		}
	}

	return out
}

// Text returns the scalar value of the first child with the given label, or
// the empty string if no such child exists.
func (n *Node) Text(label string) string {
	c := n.Child(label)
	if c == nil {
		return ""
	}

	return c.Value
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{
		Label:    n.Label,
		Value:    n.Value,
		HasValue: n.HasValue,
	}

	if n.Attrs != nil {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}

	for _, c := range n.Children {
		out.Children = append(out.Children, c.Clone())
	}

	return out
}
