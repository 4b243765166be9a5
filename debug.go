package layout

import (
	"iter"
	"log"
)

// Snapshot is a point-in-time view of one node for the debug driver
// (§4.11): tags, classes, position, size, and effective style.
type Snapshot struct {
	Tags    []string
	Classes string
	X, Y    float64
	Width   float64
	Height  float64
	Style   map[string]any
}

// Step is one opaque record in the debug driver's step sequence: a
// human-readable label, the node the step concerns, and — where the
// phase produced them — its children's snapshots (§4.11).
type Step struct {
	Label    string
	Subject  Snapshot
	Children []Snapshot
}

func snapshot(n Node, cs *ComputedStyle) Snapshot {
	if cs == nil {
		cs = n.ComputedStyle()
	}
	var values map[string]any
	if cs != nil {
		values = cs.Values
	}
	return Snapshot{
		Tags:    n.Tags(),
		Classes: n.Classes(),
		X:       n.X(),
		Y:       n.Y(),
		Width:   n.Width(),
		Height:  n.Height(),
		Style:   values,
	}
}

func snapshotStep(label string, n Node, frame *nodeFrame, children []Node) Step {
	var cs *ComputedStyle
	if frame != nil {
		cs = frame.cs
	}
	var childSnaps []Snapshot
	for _, c := range children {
		childSnaps = append(childSnaps, snapshot(c, nil))
	}
	return Step{
		Label:    label,
		Subject:  snapshot(n, cs),
		Children: childSnaps,
	}
}

// debugDriver wraps a pulled iter.Seq[Step] so the engine can expose
// an imperative nextStep() over a lazily-computed sequence (§9 "model
// as a lazy sequence of records"). Recursion into children is
// expressed by range-over-func delegation inside debugWalk, the
// explicit-stack-of-sub-iterators strategy §9 names as an option,
// generalizing the teacher's iter.Seq-based Map/Filter helpers.
type debugDriver struct {
	armed bool
	next  func() (Step, bool)
	stop  func()
}

func newDebugDriver(registry *Registry, directory Directory, root Node) *debugDriver {
	d := &driver{registry: registry, directory: directory, frames: make(map[Node]*nodeFrame)}
	next, stop := iter.Pull(debugWalk(d, root))
	return &debugDriver{armed: true, next: next, stop: stop}
}

func (dd *debugDriver) nextStep() (Step, bool) {
	step, ok := dd.next()
	if !ok {
		dd.armed = false
	}
	return step, ok
}

// EnableDebugMode arms the step generator from root (§6). While
// armed, ProcessInstance is a no-op.
func (e *Engine) EnableDebugMode(root Node) {
	e.debug = newDebugDriver(e.registry, e.directory, root)
}

// NextStep advances the debug driver one step, returning the step
// record and true, or a zero Step and false once the sequence is
// exhausted (§6). Calling it while no driver is armed logs a warning
// and returns a terminal indicator (§7).
func (e *Engine) NextStep() (Step, bool) {
	if e.debug == nil || !e.debug.armed {
		log.Println("layout: nextStep called while the debug driver is inactive")
		return Step{}, false
	}
	return e.debug.nextStep()
}

// DisableDebugMode tears down the step generator (§6).
func (e *Engine) DisableDebugMode() {
	if e.debug != nil {
		e.debug.stop()
	}
	e.debug = nil
}

// debugWalk re-executes the same phases as driver.processNode, but
// yields a snapshot Step between each one instead of running them
// all synchronously. This is the only place those phases are
// duplicated rather than shared with processNode: splicing a live,
// resumable sequence through recursive calls needs range-over-func,
// which processNode's plain recursion doesn't provide.
func debugWalk(d *driver, n Node) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		frame := d.ensureFrame(n)
		if !yield(snapshotStep("compute style", n, frame, nil)) {
			return
		}

		d.applySizing(n, frame)
		if !yield(snapshotStep("resolve size", n, frame, nil)) {
			return
		}

		d.partitionChildren(n, frame)
		all := append(append([]Node{}, frame.inFlow...), frame.outOfFlow...)
		if !yield(snapshotStep("partition children", n, frame, all)) {
			return
		}

		for _, child := range frame.inFlow {
			for s := range debugWalk(d, child) {
				if !yield(s) {
					return
				}
			}
		}

		d.runFlow(n, frame)
		if !yield(snapshotStep("flow layout", n, frame, frame.inFlow)) {
			return
		}

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
			if !yield(snapshotStep("fit content", n, frame, frame.inFlow)) {
				return
			}
		}

		for _, child := range frame.outOfFlow {
			for s := range debugWalk(d, child) {
				if !yield(s) {
					return
				}
			}
			d.positionOutOfFlow(n, child, frame)
			if !yield(snapshotStep("position out-of-flow", child, d.frames[child], nil)) {
				return
			}
		}
	}
}
