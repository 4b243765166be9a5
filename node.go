// Package layout implements a retained-mode CSS-flexbox-like layout
// engine: it reads styles off a tree of host-owned rectangles and
// writes their x, y, width, height in place. The host owns node
// creation, destruction, rendering, and hit testing; this package only
// ever reads the fields listed on Node and writes geometry.
package layout

// Node is the contract the engine requires from a host-owned scene
// graph rectangle. Implementations are free to store anything else;
// the engine never creates or destroys a Node and only touches the
// members below.
type Node interface {
	// Geometry, read before a pass and written by it.
	X() float64
	Y() float64
	Width() float64
	Height() float64
	SetX(float64)
	SetY(float64)
	SetWidth(float64)
	SetHeight(float64)

	// IsVisible reports whether the node participates in layout at
	// all. Invisible nodes are skipped by their parent's flow/grid
	// layouter (§4.4 phase 3).
	IsVisible() bool

	// Parent and Children express tree structure. Children order is
	// significant: siblings are processed in list order.
	Parent() Node
	Children() []Node

	// Tags are an unordered set of strings used by anchor-target
	// resolution (§4.10) and reported in debug snapshots (§4.11).
	HasTag(tag string) bool
	Tags() []string

	// Attribute accessors for the two user-visible style inputs and
	// the one opt-out flag.
	Classes() string
	Style() string

	// DoLayout reports whether the node has an explicit doLayout
	// attribute and, if so, its value. When ok is true and value is
	// false, the node is excluded from its parent's flow/grid pass
	// (§4.4 phase 3, §6).
	DoLayout() (value bool, ok bool)

	// ComputedStyle is the engine's per-pass scratch slot (§9 design
	// note: "computed-style scratch field on nodes"). The engine
	// reads and overwrites it at the start of every pass; hosts
	// should not rely on its contents between passes.
	ComputedStyle() *ComputedStyle
	SetComputedStyle(*ComputedStyle)
}

// Directory is the host's complete object index, used by anchor target
// resolution (§4.10) to find "the first node whose tag set contains
// this string, searched across every object type exposed by the
// host". The engine has no notion of object types beyond Node; a host
// that partitions nodes into typed collections is expected to present
// a flattened view through FindByTag.
type Directory interface {
	// FindByTag returns the first node (in the host's own iteration
	// order) whose tag set contains tag, or nil if none matches.
	FindByTag(tag string) Node
}
