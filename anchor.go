package layout

// anchorPointOffset returns the (x, y) offset of one of the nine
// named anchor points within a w×h rectangle (§4.10).
func anchorPointOffset(point AnchorPoint, w, h float64) (float64, float64) {
	switch point {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTop:
		return w / 2, 0
	case AnchorTopRight:
		return w, 0
	case AnchorLeft:
		return 0, h / 2
	case AnchorRight:
		return w, h / 2
	case AnchorBottomLeft:
		return 0, h
	case AnchorBottom:
		return w / 2, h
	case AnchorBottomRight:
		return w, h
	default: // center
		return w / 2, h / 2
	}
}

// positionAnchor pins child's selfAnchor point to the anchorPoint of
// its resolved target, plus a user offset (§4.10). A target that
// cannot be resolved is a silent no-op (§7).
func (d *driver) positionAnchor(parent, child Node, childFrame *nodeFrame) {
	target := d.resolveAnchorTarget(parent, child, childFrame.props.AnchorTarget)
	if target == nil {
		return
	}

	tx, ty := anchorPointOffset(childFrame.props.AnchorPoint, target.Width(), target.Height())
	sx, sy := anchorPointOffset(childFrame.props.SelfAnchor, child.Width(), child.Height())

	targetX, targetY := target.X()+tx, target.Y()+ty
	selfX, selfY := child.X()+sx, child.Y()+sy

	child.SetX(child.X() + (targetX - selfX) + childFrame.props.AnchorOffsetX)
	child.SetY(child.Y() + (targetY - selfY) + childFrame.props.AnchorOffsetY)
}

// resolveAnchorTarget implements §4.10's target resolution: no target
// means the parent, "parent" means the parent, any other string is a
// tag search, and a Node handle resolves to itself.
func (d *driver) resolveAnchorTarget(parent, child Node, raw any) Node {
	switch t := raw.(type) {
	case nil:
		return parent
	case string:
		if t == "parent" {
			return parent
		}
		return d.resolveAnchorTag(t, child)
	case Node:
		return t
	default:
		return parent
	}
}

// resolveAnchorTag searches the host directory if one was supplied,
// otherwise falls back to a search over the tree being processed,
// starting from its root (§9 "requires iterating the host's complete
// object directory").
func (d *driver) resolveAnchorTag(tag string, from Node) Node {
	if d.directory != nil {
		return d.directory.FindByTag(tag)
	}
	root := from
	for root.Parent() != nil {
		root = root.Parent()
	}
	return findByTag(root, tag)
}

func findByTag(n Node, tag string) Node {
	if n.HasTag(tag) {
		return n
	}
	for _, c := range n.Children() {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
