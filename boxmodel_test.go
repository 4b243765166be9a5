package layout

import "testing"

func TestResolveSidesSpecificOverridesShorthand(t *testing.T) {
	cs := newComputedStyle()
	cs.Values["padding"] = 5.0
	cs.Values["paddingTop"] = 12.0

	box := ResolveBoxModel(cs)
	if box.Padding.Top != 12 {
		t.Errorf("specific side should win over shorthand, got %v", box.Padding.Top)
	}
	if box.Padding.Left != 5 {
		t.Errorf("unset side should fall back to shorthand, got %v", box.Padding.Left)
	}
}

func TestResolveBorderShorthandChain(t *testing.T) {
	cs := newComputedStyle()
	cs.Values["border"] = 1.0
	box := ResolveBoxModel(cs)
	if box.Border.Top != 1 || box.Border.Right != 1 {
		t.Errorf("border should fall back through borderWidth to border, got %+v", box.Border)
	}

	cs.Values["borderWidth"] = 2.0
	box = ResolveBoxModel(cs)
	if box.Border.Top != 2 {
		t.Errorf("borderWidth should win over border, got %v", box.Border.Top)
	}

	cs.Values["borderTopWidth"] = 5.0
	box = ResolveBoxModel(cs)
	if box.Border.Top != 5 || box.Border.Right != 2 {
		t.Errorf("borderTopWidth should win only for top, got %+v", box.Border)
	}
}

func TestContentWidthIsBorderBox(t *testing.T) {
	box := BoxModel{Padding: Sides{Left: 10, Right: 10}, Border: Sides{Left: 2, Right: 2}}
	if got := box.ContentWidth(100); got != 76 {
		t.Errorf("content width should subtract padding and border, got %v", got)
	}
}

func TestOuterSizesIncludeMargin(t *testing.T) {
	box := BoxModel{Margin: Sides{Top: 5, Bottom: 5, Left: 3, Right: 3}}
	if got := box.OuterWidth(10); got != 16 {
		t.Errorf("outer width should add left+right margin, got %v", got)
	}
	if got := box.OuterHeight(10); got != 20 {
		t.Errorf("outer height should add top+bottom margin, got %v", got)
	}
}
