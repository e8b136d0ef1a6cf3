// Package svgdoc implements a minimal ordered XML tree, used to
// build SVG documents before writing them out.
//
// Contrary to a map of attributes, the order of insertion of attributes
// and children is preserved, so that output is deterministic.
package svgdoc

// Attr is a name and value pair. Names may carry a
// namespace prefix, as in "xmlns:xlink".
type Attr struct {
	Name, Value string
}

// Element is a node of the tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	// Text is written before the children. It is mostly used for
	// title and desc elements.
	Text string
}

// NewElement returns an element with the given attributes, in order.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Set updates the value of the attribute `name`, keeping its position,
// or appends it if not already present.
func (e *Element) Set(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Get returns the value of the attribute `name`.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the attribute `name`, or
// an empty string if not present.
func (e *Element) Attr(name string) string {
	v, _ := e.Get(name)
	return v
}

// AddChild creates a new element and appends it to the children of `e`.
func (e *Element) AddChild(name string, attrs ...Attr) *Element {
	child := NewElement(name, attrs...)
	e.Children = append(e.Children, child)
	return child
}

// Append adds existing elements as last children of `e`.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Walk calls `fn` for `e` and its descendants, in document order.
// When `fn` returns false, the children of the current element are skipped.
func (e *Element) Walk(fn func(el *Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// FindAll returns the elements named `name` in the subtree rooted at `e`
// (including `e`), in document order.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.Name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Find returns the first element named `name`, or nil.
func (e *Element) Find(name string) *Element {
	if all := e.FindAll(name); len(all) != 0 {
		return all[0]
	}
	return nil
}

// Contains returns true if `target` is a strict descendant of `e`.
func (e *Element) Contains(target *Element) bool {
	found := false
	for _, c := range e.Children {
		c.Walk(func(el *Element) bool {
			if el == target {
				found = true
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}
