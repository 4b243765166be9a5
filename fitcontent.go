package layout

// applyFitContent resizes n to hug its in-flow children according to
// its display mode (§4.7). It must run after children are sized (§4.4
// phase 4) and after the initial flow pass has placed them.
func applyFitContent(n Node, frame *nodeFrame) {
	switch frame.props.Display {
	case DisplayHorizontal:
		fitContentAxis(n, frame, true)
	case DisplayGrid:
		fitContentGrid(n, frame)
	default:
		fitContentAxis(n, frame, false)
	}
}

// fitContentAxis hugs the main axis by summing outer sizes plus gaps
// and hugs the cross axis by the largest outer size (§4.7).
func fitContentAxis(n Node, frame *nodeFrame, mainIsWidth bool) {
	box := frame.box
	ax := flexAxis{mainWidth: mainIsWidth}
	gap := frame.props.Gap

	mainSum, crossMax := 0.0, 0.0
	for _, c := range frame.inFlow {
		cbox := ResolveBoxModel(c.ComputedStyle())
		mainSum += ax.main(c) + ax.marginMainNear(cbox) + ax.marginMainFar(cbox)
		if cross := ax.cross(c) + ax.marginCrossNear(cbox) + ax.marginCrossFar(cbox); cross > crossMax {
			crossMax = cross
		}
	}
	mainSum += gap * float64(max(len(frame.inFlow)-1, 0))

	if mainIsWidth {
		n.SetWidth(mainSum + box.Padding.Left + box.Padding.Right + box.Border.Left + box.Border.Right)
		n.SetHeight(crossMax + box.Padding.Top + box.Padding.Bottom + box.Border.Top + box.Border.Bottom)
	} else {
		n.SetHeight(mainSum + box.Padding.Top + box.Padding.Bottom + box.Border.Top + box.Border.Bottom)
		n.SetWidth(crossMax + box.Padding.Left + box.Padding.Right + box.Border.Left + box.Border.Right)
	}
}

// fitContentGrid hugs a grid container to its fixed column count and
// uniform cell size (§4.7).
func fitContentGrid(n Node, frame *nodeFrame) {
	box := frame.box
	columns := frame.props.Columns
	if columns <= 0 {
		columns = 2
	}
	gap := frame.props.Gap

	maxCellWidth, maxCellHeight := 0.0, 0.0
	for _, c := range frame.inFlow {
		cbox := ResolveBoxModel(c.ComputedStyle())
		if w := cbox.OuterWidth(c.Width()); w > maxCellWidth {
			maxCellWidth = w
		}
		if h := cbox.OuterHeight(c.Height()); h > maxCellHeight {
			maxCellHeight = h
		}
	}
	rows := (len(frame.inFlow) + columns - 1) / columns
	if rows < 0 {
		rows = 0
	}

	width := box.Padding.Left + box.Padding.Right + box.Border.Left + box.Border.Right +
		float64(columns)*maxCellWidth + float64(max(columns-1, 0))*gap
	height := box.Padding.Top + box.Padding.Bottom + box.Border.Top + box.Border.Bottom +
		float64(rows)*maxCellHeight + float64(max(rows-1, 0))*gap

	n.SetWidth(width)
	n.SetHeight(height)
}
