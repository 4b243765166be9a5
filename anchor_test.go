package layout

import "testing"

func TestAnchorPointOffsetTable(t *testing.T) {
	cases := []struct {
		point AnchorPoint
		x, y  float64
	}{
		{AnchorTopLeft, 0, 0},
		{AnchorTop, 50, 0},
		{AnchorTopRight, 100, 0},
		{AnchorLeft, 0, 25},
		{AnchorCenter, 50, 25},
		{AnchorRight, 100, 25},
		{AnchorBottomLeft, 0, 50},
		{AnchorBottom, 50, 50},
		{AnchorBottomRight, 100, 50},
	}
	for _, c := range cases {
		x, y := anchorPointOffset(c.point, 100, 50)
		if x != c.x || y != c.y {
			t.Errorf("%s offset = (%v,%v), want (%v,%v)", c.point, x, y, c.x, c.y)
		}
	}
}

func TestResolveAnchorTargetCases(t *testing.T) {
	d := &driver{}
	parent := newFakeNode()
	child := newFakeNode()

	if got := d.resolveAnchorTarget(parent, child, nil); got != Node(parent) {
		t.Errorf("nil target should resolve to parent")
	}
	if got := d.resolveAnchorTarget(parent, child, "parent"); got != Node(parent) {
		t.Errorf(`"parent" target should resolve to parent`)
	}

	handle := newFakeNode()
	if got := d.resolveAnchorTarget(parent, child, Node(handle)); got != Node(handle) {
		t.Errorf("a Node handle should resolve to itself")
	}
}

func TestResolveAnchorTargetByTagFallsBackToTreeWalk(t *testing.T) {
	d := &driver{}
	root := newFakeNode()
	mid := newFakeNode()
	tagged := newFakeNode()
	tagged.tags["mainPanel"] = struct{}{}
	root.add(mid)
	mid.add(tagged)

	got := d.resolveAnchorTarget(mid, tagged, "mainPanel")
	if got != Node(tagged) {
		t.Errorf("tag search should find the tagged descendant via a tree walk from the root")
	}
}

func TestPositionAnchorPinsPointsAndAppliesOffset(t *testing.T) {
	d := &driver{}
	target := newFakeNode()
	target.x, target.y, target.w, target.h = 50, 50, 200, 150

	child := newFakeNode()
	child.w, child.h = 120, 40
	offY := -5.0
	frame := &nodeFrame{props: Properties{
		AnchorTarget:  Node(target),
		AnchorPoint:   AnchorTop,
		SelfAnchor:    AnchorBottom,
		AnchorOffsetY: offY,
	}}

	d.positionAnchor(nil, child, frame)

	if child.x != 90 {
		t.Errorf("x = %v, want 90", child.x)
	}
	if child.y != 5 {
		t.Errorf("y = %v, want 5", child.y)
	}
}

func TestPositionAnchorUnresolvableTargetIsNoop(t *testing.T) {
	d := &driver{}
	child := newFakeNode()
	child.x, child.y = 3, 4
	frame := &nodeFrame{props: Properties{AnchorTarget: "missing"}}
	d.positionAnchor(nil, child, frame)
	if child.x != 3 || child.y != 4 {
		t.Errorf("unresolvable target should leave geometry untouched, got (%v,%v)", child.x, child.y)
	}
}
