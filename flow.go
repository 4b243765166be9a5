package layout

// flexAxis abstracts the two flow directions (§4.5) so vertical and
// horizontal layout share one implementation, mirroring the teacher's
// stack.go split between main-axis and cross-axis handling but
// generalized to avoid duplicating it per direction.
type flexAxis struct {
	mainWidth bool // true: main axis is X (horizontal layout)
}

func (a flexAxis) main(n Node) float64 {
	if a.mainWidth {
		return n.Width()
	}
	return n.Height()
}

func (a flexAxis) setMain(n Node, v float64) {
	if a.mainWidth {
		n.SetWidth(v)
	} else {
		n.SetHeight(v)
	}
}

func (a flexAxis) cross(n Node) float64 {
	if a.mainWidth {
		return n.Height()
	}
	return n.Width()
}

func (a flexAxis) setMainPos(n Node, v float64) {
	if a.mainWidth {
		n.SetX(v)
	} else {
		n.SetY(v)
	}
}

func (a flexAxis) setCrossPos(n Node, v float64) {
	if a.mainWidth {
		n.SetY(v)
	} else {
		n.SetX(v)
	}
}

func (a flexAxis) marginMainNear(b BoxModel) float64 {
	if a.mainWidth {
		return b.Margin.Left
	}
	return b.Margin.Top
}

func (a flexAxis) marginMainFar(b BoxModel) float64 {
	if a.mainWidth {
		return b.Margin.Right
	}
	return b.Margin.Bottom
}

func (a flexAxis) marginCrossNear(b BoxModel) float64 {
	if a.mainWidth {
		return b.Margin.Top
	}
	return b.Margin.Left
}

func (a flexAxis) marginCrossFar(b BoxModel) float64 {
	if a.mainWidth {
		return b.Margin.Bottom
	}
	return b.Margin.Right
}

func (a flexAxis) contentOriginMain(n Node, box BoxModel) float64 {
	if a.mainWidth {
		return n.X() + box.Padding.Left + box.Border.Left
	}
	return n.Y() + box.Padding.Top + box.Border.Top
}

func (a flexAxis) contentOriginCross(n Node, box BoxModel) float64 {
	if a.mainWidth {
		return n.Y() + box.Padding.Top + box.Border.Top
	}
	return n.X() + box.Padding.Left + box.Border.Left
}

// flexItem is one child's scratch state during a flow pass.
type flexItem struct {
	node      Node
	cs        *ComputedStyle
	box       BoxModel
	grow      float64
	shrink    float64
	base      float64
	finalMain float64
}

// layoutVertical lays children out top to bottom (§4.5).
func layoutVertical(n Node, frame *nodeFrame, children []Node) {
	layoutFlex(n, frame, children, flexAxis{mainWidth: false})
}

// layoutHorizontal lays children out left to right (§4.5).
func layoutHorizontal(n Node, frame *nodeFrame, children []Node) {
	layoutFlex(n, frame, children, flexAxis{mainWidth: true})
}

// layoutFlex runs one pass of §4.5 over children: base sizing, flex
// grow/shrink distribution, justify-content placement on the main
// axis, and align-items/align-self placement on the cross axis.
func layoutFlex(n Node, frame *nodeFrame, children []Node, ax flexAxis) {
	box := frame.box
	var containerMain, containerCross float64
	if ax.mainWidth {
		containerMain = box.ContentWidth(n.Width())
		containerCross = box.ContentHeight(n.Height())
	} else {
		containerMain = box.ContentHeight(n.Height())
		containerCross = box.ContentWidth(n.Width())
	}
	if containerMain < 0 {
		containerMain = 0
	}
	if containerCross < 0 {
		containerCross = 0
	}
	gap := frame.props.Gap

	items := make([]*flexItem, len(children))
	for i, c := range children {
		cs := c.ComputedStyle()
		cbox := ResolveBoxModel(cs)
		base := flexBaseSize(c, cs, ax, containerMain)
		items[i] = &flexItem{
			node:      c,
			cs:        cs,
			box:       cbox,
			grow:      flexGrowOf(cs),
			shrink:    flexShrinkOf(cs),
			base:      base,
			finalMain: base,
		}
	}

	// A fit-content container has no externally imposed main size to
	// distribute yet (it is about to be sized to its children in phase
	// 6), so grow/shrink distribution is skipped and items keep their
	// base size (§4.7, §8 scenario 1).
	if !frame.props.FitContent {
		gapCount := max(len(items)-1, 0)
		used := gap * float64(gapCount)
		for _, it := range items {
			used += it.finalMain + ax.marginMainNear(it.box) + ax.marginMainFar(it.box)
		}
		free := containerMain - used
		switch {
		case free > 0:
			distributeGrow(items, ax, free)
		case free < 0:
			distributeShrink(items, ax, -free)
		}
	}

	// A flex item that never entered either distribution pass (grow is
	// opt-in, and a fit-content container skips both passes entirely)
	// can still sit below its own minMain — e.g. flexBasis:10 with
	// minWidth:100 and no flexGrow. I5 requires min/max to bind again
	// after each flex pass, so every item is floored/capped here
	// regardless of which branch above produced its finalMain.
	for _, it := range items {
		it.finalMain = clampMinMax(it.finalMain, itemMinMain(it.cs, ax), itemMaxMain(it.cs, ax))
	}

	for _, it := range items {
		ax.setMain(it.node, it.finalMain)
	}

	offset, itemGap := justifyOffsets(items, ax, frame.props.JustifyContent, containerMain, gap)

	cursor := ax.contentOriginMain(n, box) + offset
	crossOrigin := ax.contentOriginCross(n, box)
	for i, it := range items {
		cursor += ax.marginMainNear(it.box)
		ax.setMainPos(it.node, cursor)
		cursor += it.finalMain + ax.marginMainFar(it.box)
		if i < len(items)-1 {
			cursor += itemGap
		}

		align := AlignSelf(it.cs, frame.props.AlignItems)
		outerCross := ax.cross(it.node) + ax.marginCrossNear(it.box) + ax.marginCrossFar(it.box)
		cOffset := crossOffset(align, containerCross, outerCross)
		ax.setCrossPos(it.node, crossOrigin+cOffset+ax.marginCrossNear(it.box))
	}
}

// flexBaseSize resolves a flex item's starting main-axis size: an
// explicit flexBasis (number or percentage against the container's
// content box), falling back to the item's own current main-axis size
// (§4.5, §4.8).
func flexBaseSize(c Node, cs *ComputedStyle, ax flexAxis, containerMain float64) float64 {
	if v, ok := cs.Get("flexBasis"); ok {
		switch t := v.(type) {
		case float64:
			return t
		case string:
			if isPercentString(t) {
				if pct, ok := parsePercentString(t); ok {
					return containerMain * pct / 100
				}
			}
		}
	}
	return ax.main(c)
}

// distributeGrow grows items with flexGrow > 0 to consume free space,
// removing an item from the active set once it clamps against its own
// min or max constraint and redistributing the remainder among the
// rest (§4.5 "iterative grow distribution with active-set removal on
// clamp"; I5: min/max applied again after each flex-grow pass, min
// wins).
func distributeGrow(items []*flexItem, ax flexAxis, free float64) {
	var active []*flexItem
	for _, it := range items {
		if it.grow > 0 {
			active = append(active, it)
		}
	}
	remaining := free
	for len(active) > 0 && remaining > 1e-9 {
		totalGrow := 0.0
		for _, it := range active {
			totalGrow += it.grow
		}
		if totalGrow <= 0 {
			break
		}
		var next []*flexItem
		clamped := false
		for _, it := range active {
			share := remaining * it.grow / totalGrow
			candidate := it.finalMain + share
			min, max := itemMinMain(it.cs, ax), itemMaxMain(it.cs, ax)
			bound := clampMinMax(candidate, min, max)
			if bound != candidate {
				remaining -= bound - it.finalMain
				it.finalMain = bound
				clamped = true
				continue
			}
			next = append(next, it)
		}
		if !clamped {
			for _, it := range next {
				it.finalMain += remaining * it.grow / totalGrow
			}
			break
		}
		active = next
	}
}

// distributeShrink shrinks items with flexShrink > 0 in a single pass,
// weighted by shrink × base size, flooring each to zero and then to
// its own minMain (§4.5 Step 3b: "target = max(0, baseSize −
// reduction), then clamp to minMain if defined"; §8 scenario 4's
// accepted-overflow case relies on the min floor winning even though
// the container ends up too small to hold it).
func distributeShrink(items []*flexItem, ax flexAxis, overflow float64) {
	totalWeight := 0.0
	for _, it := range items {
		if it.shrink > 0 {
			totalWeight += it.shrink * it.base
		}
	}
	if totalWeight <= 0 {
		return
	}
	for _, it := range items {
		if it.shrink <= 0 {
			continue
		}
		weight := it.shrink * it.base
		size := it.finalMain - overflow*weight/totalWeight
		if size < 0 {
			size = 0
		}
		if min := itemMinMain(it.cs, ax); min != nil && size < *min {
			size = *min
		}
		it.finalMain = size
	}
}

// flexGrowOf and flexShrinkOf apply §4.5 step 1's defaults: grow
// defaults to 0 (opt-in), shrink defaults to 1 (opt-out) — matching
// ordinary flexbox, where everything shrinks unless told not to.
func flexGrowOf(cs *ComputedStyle) float64 {
	return numberProp(cs, "flexGrow", 0)
}

func flexShrinkOf(cs *ComputedStyle) float64 {
	return numberProp(cs, "flexShrink", 1)
}

func itemMinMain(cs *ComputedStyle, ax flexAxis) *float64 {
	key := "minHeight"
	if ax.mainWidth {
		key = "minWidth"
	}
	return optionalNumberProp(cs, key)
}

func itemMaxMain(cs *ComputedStyle, ax flexAxis) *float64 {
	key := "maxHeight"
	if ax.mainWidth {
		key = "maxWidth"
	}
	return optionalNumberProp(cs, key)
}

// justifyOffsets implements the justify-content offset/gap table
// (§4.5): the leading offset before the first item and the gap to
// apply between items.
func justifyOffsets(items []*flexItem, ax flexAxis, justify Justify, containerMain, gap float64) (offset, itemGap float64) {
	n := len(items)
	total := 0.0
	for _, it := range items {
		total += it.finalMain + ax.marginMainNear(it.box) + ax.marginMainFar(it.box)
	}
	gapCount := max(n-1, 0)
	total += gap * float64(gapCount)
	free := containerMain - total
	if free < 0 {
		free = 0
	}
	switch justify {
	case JustifyCenter:
		return free / 2, gap
	case JustifyEnd:
		return free, gap
	case JustifySpaceBetween:
		if gapCount > 0 {
			return 0, gap + free/float64(gapCount)
		}
		return 0, gap
	case JustifySpaceAround:
		each := 0.0
		if n > 0 {
			each = free / float64(n)
		}
		return each / 2, gap + each
	default:
		return 0, gap
	}
}

// crossOffset implements align-items/align-self placement on the
// cross axis (§4.5, §4.6). The Align vocabulary has no stretch value:
// cross-axis size is whatever the item already resolved to.
func crossOffset(align Align, containerCross, outerCross float64) float64 {
	free := containerCross - outerCross
	switch align {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	default:
		return 0
	}
}
