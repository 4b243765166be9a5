package memnode

import "github.com/kestrel-ui/layout"

// Directory is a flat index over one or more root trees, implementing
// layout.Directory by depth-first tag search (§4.10). A real host with
// typed object collections would flatten those into the same
// interface; this one just walks its roots.
type Directory struct {
	roots []*Node
}

// NewDirectory builds a directory over the given root trees.
func NewDirectory(roots ...*Node) *Directory {
	return &Directory{roots: roots}
}

// FindByTag returns the first node, across all roots in order, whose
// tag set contains tag.
func (d *Directory) FindByTag(tag string) layout.Node {
	for _, root := range d.roots {
		if found := findTag(root, tag); found != nil {
			return found
		}
	}
	return nil
}

func findTag(n *Node, tag string) *Node {
	if n.HasTag(tag) {
		return n
	}
	for _, c := range n.children {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
