package layout

// gridCell is one child's scratch state during a grid pass.
type gridCell struct {
	node Node
	box  BoxModel
}

// layoutGrid arranges children into a fixed-column, uniform-cell grid
// (§4.6), honoring the flex-aware variant chosen as reference in §9:
// per-cell justifySelf/alignSelf positioning within each uniform cell.
func layoutGrid(n Node, frame *nodeFrame, children []Node) {
	columns := frame.props.Columns
	if columns <= 0 {
		columns = 2
	}
	gap := frame.props.Gap
	box := frame.box

	cells := make([]gridCell, len(children))
	maxCellWidth, maxCellHeight := 0.0, 0.0
	for i, c := range children {
		cs := c.ComputedStyle()
		cbox := ResolveBoxModel(cs)
		cells[i] = gridCell{node: c, box: cbox}
		if outerW := cbox.OuterWidth(c.Width()); outerW > maxCellWidth {
			maxCellWidth = outerW
		}
		if outerH := cbox.OuterHeight(c.Height()); outerH > maxCellHeight {
			maxCellHeight = outerH
		}
	}

	contentWidth := box.ContentWidth(n.Width())
	if contentWidth < 0 {
		contentWidth = 0
	}
	extraWidth := contentWidth - float64(columns)*maxCellWidth - float64(max(columns-1, 0))*gap
	if extraWidth < 0 {
		extraWidth = 0
	}

	var startOffsetX, extraColumnGap float64
	switch frame.props.JustifyContent {
	case JustifyCenter:
		startOffsetX = extraWidth / 2
	case JustifyEnd:
		startOffsetX = extraWidth
	case JustifySpaceBetween:
		if columns > 1 {
			extraColumnGap = extraWidth / float64(columns-1)
		}
	case JustifySpaceAround:
		startOffsetX = extraWidth / float64(columns) / 2
		extraColumnGap = extraWidth / float64(columns)
	}

	originX := n.X() + box.Padding.Left + box.Border.Left + startOffsetX
	originY := n.Y() + box.Padding.Top + box.Border.Top

	for i, cl := range cells {
		row := i / columns
		col := i % columns
		cellX := originX + float64(col)*(maxCellWidth+gap+extraColumnGap)
		cellY := originY + float64(row)*(maxCellHeight+gap)
		positionInCell(cl, cellX, cellY, maxCellWidth, maxCellHeight, frame.props.AlignItems)
	}
}

// positionInCell places one cell's node inside its uniform cell
// per justifySelf (horizontal) and alignSelf/alignItems (vertical).
func positionInCell(cl gridCell, cellX, cellY, cellW, cellH float64, alignItems Align) {
	cs := cl.node.ComputedStyle()
	justifySelf := JustifySelf(cs)
	alignSelf := AlignSelf(cs, alignItems)
	w, h := cl.node.Width(), cl.node.Height()

	var x float64
	switch justifySelf {
	case AlignCenter:
		outerW := cl.box.OuterWidth(w)
		x = cellX + (cellW-outerW)/2 + cl.box.Margin.Left
	case AlignEnd:
		x = cellX + cellW - w - cl.box.Margin.Right
	default:
		x = cellX + cl.box.Margin.Left
	}

	var y float64
	switch alignSelf {
	case AlignCenter:
		outerH := cl.box.OuterHeight(h)
		y = cellY + (cellH-outerH)/2 + cl.box.Margin.Top
	case AlignEnd:
		y = cellY + cellH - h - cl.box.Margin.Bottom
	default:
		y = cellY + cl.box.Margin.Top
	}

	cl.node.SetX(x)
	cl.node.SetY(y)
}
