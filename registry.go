package layout

import "strings"

// ComputedStyle is the single mapping produced by the cascade (§3): a
// winner-takes-all merge of every class style in the order the node's
// classes attribute lists them, followed by the node's inline style,
// honoring !important.
type ComputedStyle struct {
	Values    map[string]any
	Important map[string]bool
}

func newComputedStyle() *ComputedStyle {
	return &ComputedStyle{
		Values:    make(map[string]any),
		Important: make(map[string]bool),
	}
}

// Get returns a recognized property's raw value and whether it was
// set at all.
func (cs *ComputedStyle) Get(key string) (any, bool) {
	v, ok := cs.Values[key]
	return v, ok
}

// merge folds one parsed style's declarations into cs in source order,
// per §4.2: "a property writes into the result unless the result
// already holds that property marked important and the incoming one
// is not". A winning important write adds the property to cs's
// important set; a winning non-important write clears it.
func (cs *ComputedStyle) merge(src *ParsedStyle) {
	for key, val := range src.Values {
		incomingImportant := src.Important[key]
		if cs.Important[key] && !incomingImportant {
			continue
		}
		cs.Values[key] = val
		if incomingImportant {
			cs.Important[key] = true
		} else {
			cs.Important[key] = false
		}
	}
}

// Registry holds named style classes, registered once and read many
// times during cascade (§4.2, §5 "written during registration and
// read-only thereafter within a tick"). It is the only state the
// engine carries across passes.
type Registry struct {
	classes map[string]*ParsedStyle
}

// NewRegistry creates an empty class registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*ParsedStyle)}
}

// RegisterClass parses text once and stores it under name. Registering
// the same name again overwrites the previous entry (§6).
func (r *Registry) RegisterClass(name, text string) {
	r.classes[name] = ParseStyle(text)
}

// ClassNames splits a node's whitespace-separated classes attribute.
func ClassNames(classes string) []string {
	return strings.Fields(classes)
}

// ComputeStyle builds the ordered style-source list described in §4.2
// ("one parsed style per recognized class... then the parsed inline
// style") and merges it into a single ComputedStyle. Unknown class
// names are skipped.
func (r *Registry) ComputeStyle(n Node) *ComputedStyle {
	result := newComputedStyle()
	for _, name := range ClassNames(n.Classes()) {
		if cls, ok := r.classes[name]; ok {
			result.merge(cls)
		}
	}
	result.merge(ParseStyle(n.Style()))
	return result
}
