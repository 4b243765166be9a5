package layout

// Sides holds a value for each of the four box edges.
type Sides struct {
	Top, Right, Bottom, Left float64
}

// BoxModel is the per-node margin/padding/border table derived in
// §4.3: for each side, the specific-side property wins over the
// shorthand, which wins over zero.
type BoxModel struct {
	Margin  Sides
	Padding Sides
	Border  Sides
}

// resolveSides implements the "specific side, else shorthand, else 0"
// pattern shared by margin, padding, and border (§3 "Box model"),
// generalized from the teacher's per-side override reading in its grid
// and stack layouters.
func resolveSides(cs *ComputedStyle, prop string) Sides {
	shorthand := numberProp(cs, prop, 0)
	return Sides{
		Top:    numberProp(cs, prop+"Top", shorthand),
		Right:  numberProp(cs, prop+"Right", shorthand),
		Bottom: numberProp(cs, prop+"Bottom", shorthand),
		Left:   numberProp(cs, prop+"Left", shorthand),
	}
}

// resolveBorder follows the same pattern but with the border-specific
// naming: borderTopWidth, else borderWidth, else border (§3).
func resolveBorder(cs *ComputedStyle) Sides {
	shorthand := numberProp(cs, "borderWidth", numberProp(cs, "border", 0))
	return Sides{
		Top:    numberProp(cs, "borderTopWidth", shorthand),
		Right:  numberProp(cs, "borderRightWidth", shorthand),
		Bottom: numberProp(cs, "borderBottomWidth", shorthand),
		Left:   numberProp(cs, "borderLeftWidth", shorthand),
	}
}

// ResolveBoxModel derives the full box model for a computed style.
func ResolveBoxModel(cs *ComputedStyle) BoxModel {
	return BoxModel{
		Margin:  resolveSides(cs, "margin"),
		Padding: resolveSides(cs, "padding"),
		Border:  resolveBorder(cs),
	}
}

// numberProp reads a numeric property, falling back to def when
// absent or non-numeric (e.g. a percentage string, which box-model
// sides never resolve on their own).
func numberProp(cs *ComputedStyle, key string, def float64) float64 {
	v, ok := cs.Get(key)
	if !ok {
		return def
	}
	if f, ok := v.(float64); ok {
		return f
	}
	return def
}

// OuterWidth is width plus the horizontal margins (§4.3).
func (b BoxModel) OuterWidth(width float64) float64 {
	return width + b.Margin.Left + b.Margin.Right
}

// OuterHeight is height plus the vertical margins (§4.3).
func (b BoxModel) OuterHeight(height float64) float64 {
	return height + b.Margin.Top + b.Margin.Bottom
}

// ContentWidth is the border-box content width: total width minus
// padding and border on both sides (§4.3 "border is included inside
// the node's width/height").
func (b BoxModel) ContentWidth(width float64) float64 {
	return width - b.Padding.Left - b.Padding.Right - b.Border.Left - b.Border.Right
}

// ContentHeight is the analogous vertical content height.
func (b BoxModel) ContentHeight(height float64) float64 {
	return height - b.Padding.Top - b.Padding.Bottom - b.Border.Top - b.Border.Bottom
}
