package layout

import "testing"

func gridChild(w, h float64) *fakeNode {
	c := newFakeNode()
	c.w, c.h = w, h
	c.computed = newComputedStyle()
	return c
}

func TestLayoutGridUniformCellsAndPositions(t *testing.T) {
	root := newFakeNode()
	root.w, root.h = 220, 220

	a, b, c, d := gridChild(50, 30), gridChild(100, 60), gridChild(40, 40), gridChild(20, 20)
	root.add(a, b, c, d)

	frame := &nodeFrame{
		props: Properties{Columns: 2, Gap: 10},
		box:   BoxModel{},
	}

	layoutGrid(root, frame, root.Children())

	// max cell = 100x60, gap 10.
	if a.x != 0 || a.y != 0 {
		t.Errorf("cell[0,0] origin = (%v,%v), want (0,0)", a.x, a.y)
	}
	if b.x != 110 || b.y != 0 {
		t.Errorf("cell[0,1] origin = (%v,%v), want (110,0)", b.x, b.y)
	}
	if c.x != 0 || c.y != 70 {
		t.Errorf("cell[1,0] origin = (%v,%v), want (0,70)", c.x, c.y)
	}
}

func TestLayoutGridJustifySelfEndWithinCell(t *testing.T) {
	root := newFakeNode()
	root.w, root.h = 200, 100

	a := gridChild(40, 20)
	a.computed.Values["justifySelf"] = "end"
	b := gridChild(100, 20)
	root.add(a, b)

	frame := &nodeFrame{props: Properties{Columns: 1, Gap: 0}, box: BoxModel{}}
	layoutGrid(root, frame, root.Children())

	// Cells are uniform at the widest child's outer width (100), not the
	// container width.
	if a.x != 60 {
		t.Errorf("justifySelf end x = %v, want 60 (cellW 100 - w 40)", a.x)
	}
}

func TestLayoutGridDefaultsToTwoColumnsWhenUnset(t *testing.T) {
	root := newFakeNode()
	root.w, root.h = 100, 100
	a, b, c := gridChild(10, 10), gridChild(10, 10), gridChild(10, 10)
	root.add(a, b, c)

	frame := &nodeFrame{props: Properties{Columns: 0}, box: BoxModel{}}
	layoutGrid(root, frame, root.Children())

	if c.y == a.y {
		t.Errorf("third child should wrap to a new row with columns defaulted to 2")
	}
}
