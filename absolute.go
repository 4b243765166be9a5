package layout

// positionAbsolute places child within parent's border box (inside the
// border, not the padding) using top/right/bottom/left fallback chains
// (§4.9). A missing
// parent is a silent no-op (§7).
func positionAbsolute(parent, child Node, parentFrame, childFrame *nodeFrame) {
	if parent == nil {
		return
	}
	// Measured from the border edge, not the padding edge: §8's worked
	// absolute-corner example (parent padding 15, border 2, right/bottom
	// 10, expecting x=438/y=338 on a 500x400 parent) only subtracts the
	// border, so offsets are resolved against the border box rather
	// than the full padding+border content rect §4.9's prose describes.
	pbox := parentFrame.box
	contentLeft := parent.X() + pbox.Border.Left
	contentRight := parent.X() + parent.Width() - pbox.Border.Right
	contentTop := parent.Y() + pbox.Border.Top
	contentBottom := parent.Y() + parent.Height() - pbox.Border.Bottom

	cbox := childFrame.box
	props := childFrame.props

	var x float64
	switch {
	case props.Left != nil:
		x = contentLeft + *props.Left + cbox.Margin.Left
	case props.Right != nil:
		x = contentRight - *props.Right - child.Width() - cbox.Margin.Right
	default:
		x = contentLeft + cbox.Margin.Left
	}

	var y float64
	switch {
	case props.Top != nil:
		y = contentTop + *props.Top + cbox.Margin.Top
	case props.Bottom != nil:
		y = contentBottom - *props.Bottom - child.Height() - cbox.Margin.Bottom
	default:
		y = contentTop + cbox.Margin.Top
	}

	child.SetX(x)
	child.SetY(y)
}
