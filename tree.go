package layout

// nodeFrame is the driver's per-pass scratch for one node: its
// computed style/properties/box model, plus the results of
// classifying its children (§4.4 phase 3). It lives only for the
// duration of one ProcessInstance call.
type nodeFrame struct {
	cs    *ComputedStyle
	props Properties
	box   BoxModel

	inFlow          []Node
	outOfFlow       []Node
	percentChildren []Node
	hasFlexChildren bool
}

// Engine is the public entry point described in §6: a style-class
// registry plus the ability to run a layout pass or drive the
// step-by-step debugger.
type Engine struct {
	registry  *Registry
	directory Directory
	debug     *debugDriver
}

// NewEngine creates an engine with an empty class registry.
func NewEngine() *Engine {
	return &Engine{registry: NewRegistry()}
}

// RegisterClass parses text once and stores it under name (§6).
// Re-registering a name overwrites it.
func (e *Engine) RegisterClass(name, text string) {
	e.registry.RegisterClass(name, text)
}

// SetDirectory supplies the host's complete object directory, used by
// anchor-target tag resolution (§4.10). Optional: without one, the
// engine falls back to searching the tree being processed.
func (e *Engine) SetDirectory(d Directory) {
	e.directory = d
}

// ProcessInstance runs one layout pass rooted at node (§6). While the
// debug driver is armed (§4.11), this is a no-op.
func (e *Engine) ProcessInstance(root Node) {
	if e.debug != nil && e.debug.armed {
		return
	}
	d := &driver{
		registry:  e.registry,
		directory: e.directory,
		frames:    make(map[Node]*nodeFrame),
	}
	d.processNode(root)
}

// driver carries one pass's scratch state (§4.4).
type driver struct {
	registry  *Registry
	directory Directory
	frames    map[Node]*nodeFrame
}

// ensureFrame computes (once) and caches a node's style, properties,
// and box model. Calling it again for the same node is a no-op that
// returns the cached frame — this is the "cached on the node" scratch
// field of §9, keyed by node identity in the driver rather than stored
// on the Node itself (the Node interface only exposes the raw
// ComputedStyle slot, per §6).
func (d *driver) ensureFrame(n Node) *nodeFrame {
	if f, ok := d.frames[n]; ok {
		return f
	}
	cs := d.registry.ComputeStyle(n)
	n.SetComputedStyle(cs)
	props := ResolveProperties(cs)
	if n.Parent() == nil {
		// I2: the root's position is always treated as relative.
		props.Position = PositionRelative
	}
	box := ResolveBoxModel(cs)
	f := &nodeFrame{cs: cs, props: props, box: box}
	d.frames[n] = f
	return f
}

// processNode runs the seven ordered phases of §4.4 for n.
func (d *driver) processNode(n Node) {
	frame := d.ensureFrame(n)

	// Phase 1: percent/explicit sizing, then min/max clamp.
	d.applySizing(n, frame)

	// Phase 2 (properties already resolved in ensureFrame) + phase 3.
	d.partitionChildren(n, frame)

	// Phase 4: recurse into in-flow children bottom-up.
	for _, child := range frame.inFlow {
		d.processNode(child)
	}

	// Phase 5: flow layout over in-flow children.
	d.runFlow(n, frame)

	// Phase 6: fit-content, and conditional re-resolution/re-layout.
	// Both re-run branches are gated on fitContent (§9's resolved open
	// question: prefer the fit-content-gated form over unconditional
	// re-resolution).
	if frame.props.FitContent {
		applyFitContent(n, frame)
		switch {
		case len(frame.percentChildren) > 0:
			for _, child := range frame.percentChildren {
				d.resolvePercentSize(child, n, frame)
				d.applyMinMaxClamp(child, d.frames[child])
			}
			d.runFlow(n, frame)
		case frame.hasFlexChildren:
			d.runFlow(n, frame)
		}
	}

	// Phase 7: out-of-flow children are sized, then positioned.
	for _, child := range frame.outOfFlow {
		d.processNode(child)
		d.positionOutOfFlow(n, child, frame)
	}
}

// applySizing implements §4.4 phase 1 and §4.8's initial pass.
func (d *driver) applySizing(n Node, frame *nodeFrame) {
	if parent := n.Parent(); parent != nil {
		if pframe, ok := d.frames[parent]; ok {
			d.resolvePercentSize(n, parent, pframe)
		}
	}
	applyExplicitSize(n, frame)
	d.applyMinMaxClamp(n, frame)
}

// resolvePercentSize resolves percentWidth/percentHeight (or a
// trailing-'%' width/height string) against parent's current content
// box (§4.8). parent is always n's parent; during fit-content
// re-resolution it carries the size fit-content has just written.
func (d *driver) resolvePercentSize(n, parent Node, pframe *nodeFrame) {
	if pct, ok := percentOf(d.frames[n].cs, "percentWidth", "width"); ok {
		n.SetWidth(resolvePercentWidth(pframe.box, parent.Width(), pct))
	}
	if pct, ok := percentOf(d.frames[n].cs, "percentHeight", "height"); ok {
		n.SetHeight(resolvePercentHeight(pframe.box, parent.Height(), pct))
	}
}

func (d *driver) applyMinMaxClamp(n Node, frame *nodeFrame) {
	if frame == nil {
		return
	}
	minW, maxW := minMaxProps(frame.cs, "minWidth", "maxWidth")
	minH, maxH := minMaxProps(frame.cs, "minHeight", "maxHeight")
	n.SetWidth(clampMinMax(n.Width(), minW, maxW))
	n.SetHeight(clampMinMax(n.Height(), minH, maxH))
}

// applyExplicitSize writes an explicit numeric width/height (§4.4
// phase 1). Percentage and "auto" values are left for the percent
// resolver and the flow/fit-content sizers respectively.
func applyExplicitSize(n Node, frame *nodeFrame) {
	if v, ok := frame.cs.Get("width"); ok {
		if f, ok := v.(float64); ok {
			n.SetWidth(f)
		}
	}
	if v, ok := frame.cs.Get("height"); ok {
		if f, ok := v.(float64); ok {
			n.SetHeight(f)
		}
	}
}

// partitionChildren implements §4.4 phases 2-3: skip invisible/
// doLayout-false children, compute each surviving child's style once,
// and classify the rest into in-flow / out-of-flow / percent-sized.
func (d *driver) partitionChildren(n Node, frame *nodeFrame) {
	for _, child := range n.Children() {
		if !child.IsVisible() {
			continue
		}
		if v, ok := child.DoLayout(); ok && !v {
			continue
		}

		childFrame := d.ensureFrame(child)

		switch childFrame.props.Position {
		case PositionAbsolute, PositionAnchor:
			frame.outOfFlow = append(frame.outOfFlow, child)
		default:
			frame.inFlow = append(frame.inFlow, child)
			if hasFlexProps(childFrame.cs) {
				frame.hasFlexChildren = true
			}
		}

		if isPercentSized(childFrame.cs) {
			frame.percentChildren = append(frame.percentChildren, child)
		}
	}
}

// hasFlexProps reports whether a child is a flex item at all (§4.5
// step 1): flexGrow defaults to 0 (opt-in) but flexShrink defaults to
// 1 (opt-out), so in practice this is true unless flexShrink is
// explicitly set to 0 with no flexGrow.
func hasFlexProps(cs *ComputedStyle) bool {
	return flexGrowOf(cs) > 0 || flexShrinkOf(cs) > 0
}

func isPercentSized(cs *ComputedStyle) bool {
	if _, ok := percentOf(cs, "percentWidth", "width"); ok {
		return true
	}
	if _, ok := percentOf(cs, "percentHeight", "height"); ok {
		return true
	}
	if v, ok := cs.Get("flexBasis"); ok {
		if s, ok := v.(string); ok && isPercentString(s) {
			return true
		}
	}
	return false
}

// runFlow dispatches to the right layouter for frame.props.Display
// over frame.inFlow, when there's anything to lay out (§4.4 phase 5).
func (d *driver) runFlow(n Node, frame *nodeFrame) {
	if len(frame.inFlow) == 0 {
		return
	}
	switch frame.props.Display {
	case DisplayHorizontal:
		layoutHorizontal(n, frame, frame.inFlow)
	case DisplayGrid:
		layoutGrid(n, frame, frame.inFlow)
	default:
		layoutVertical(n, frame, frame.inFlow)
	}
}

// positionOutOfFlow positions one out-of-flow child per its own
// position property (§4.4 phase 7, §4.9, §4.10).
func (d *driver) positionOutOfFlow(parent, child Node, parentFrame *nodeFrame) {
	childFrame := d.frames[child]
	switch childFrame.props.Position {
	case PositionAnchor:
		d.positionAnchor(parent, child, childFrame)
	default:
		positionAbsolute(parent, child, parentFrame, childFrame)
	}
}
