// Package memnode is a minimal in-memory Node implementation: a tree
// of geometry-only rectangles that satisfies layout.Node, for use by
// tests and the layoutdebug demo. Hosts with a real scene graph embed
// their own node type instead; this one exists only because the
// engine needs something to drive it with.
package memnode

import "github.com/kestrel-ui/layout"

// Node is a bare rectangle: geometry, tags, the two style attributes,
// and tree structure. It implements layout.Node.
type Node struct {
	x, y, width, height float64
	visible             bool
	tags                map[string]struct{}
	classes             string
	style               string
	doLayout            *bool

	parent   *Node
	children []*Node

	computed *layout.ComputedStyle
}

// New creates a visible, childless, untagged node.
func New() *Node {
	return &Node{visible: true, tags: make(map[string]struct{})}
}

func (n *Node) X() float64      { return n.x }
func (n *Node) Y() float64      { return n.y }
func (n *Node) Width() float64  { return n.width }
func (n *Node) Height() float64 { return n.height }

func (n *Node) SetX(v float64)      { n.x = v }
func (n *Node) SetY(v float64)      { n.y = v }
func (n *Node) SetWidth(v float64)  { n.width = v }
func (n *Node) SetHeight(v float64) { n.height = v }

// IsVisible reports whether the node participates in layout.
func (n *Node) IsVisible() bool { return n.visible }

// SetVisible toggles layout participation.
func (n *Node) SetVisible(v bool) { n.visible = v }

// Parent returns the parent node, or a nil layout.Node if this is a
// root.
func (n *Node) Parent() layout.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []layout.Node {
	out := make([]layout.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Add appends children, setting their parent to n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// HasTag reports whether tag is in the node's tag set.
func (n *Node) HasTag(tag string) bool {
	_, ok := n.tags[tag]
	return ok
}

// Tags returns the node's tag set in unspecified order.
func (n *Node) Tags() []string {
	out := make([]string, 0, len(n.tags))
	for t := range n.tags {
		out = append(out, t)
	}
	return out
}

// Tag adds one or more tags to the node's tag set.
func (n *Node) Tag(tags ...string) *Node {
	for _, t := range tags {
		n.tags[t] = struct{}{}
	}
	return n
}

// Classes returns the whitespace-separated class list.
func (n *Node) Classes() string { return n.classes }

// SetClasses sets the whitespace-separated class list.
func (n *Node) SetClasses(c string) *Node {
	n.classes = c
	return n
}

// Style returns the inline style text block.
func (n *Node) Style() string { return n.style }

// SetStyle sets the inline style text block.
func (n *Node) SetStyle(s string) *Node {
	n.style = s
	return n
}

// DoLayout reports the node's explicit doLayout override, if any.
func (n *Node) DoLayout() (value bool, ok bool) {
	if n.doLayout == nil {
		return false, false
	}
	return *n.doLayout, true
}

// SetDoLayout sets an explicit doLayout override.
func (n *Node) SetDoLayout(v bool) *Node {
	n.doLayout = &v
	return n
}

// ComputedStyle returns the engine's per-pass scratch style.
func (n *Node) ComputedStyle() *layout.ComputedStyle { return n.computed }

// SetComputedStyle overwrites the engine's per-pass scratch style.
func (n *Node) SetComputedStyle(cs *layout.ComputedStyle) { n.computed = cs }
