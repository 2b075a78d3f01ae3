// Package dom is a minimal element tree used to hand candidate lists and
// slotted content to terminal widgets. It models only what the widgets read:
// ids, slot assignment, data attributes, text and children.
package dom

import (
	"maps"
	"strings"
)

// Element is a node with attributes, a dataset and ordered children.
type Element struct {
	Tag string

	id       string
	slot     string
	text     string
	attrs    map[string]string
	dataset  map[string]string
	children []*Element
	parent   *Element
	doc      *Document
}

// NewElement creates a detached element.
func NewElement(tag string) *Element {
	return &Element{
		Tag:     tag,
		attrs:   make(map[string]string),
		dataset: make(map[string]string),
	}
}

// NewOption builds an option element with data-value, optional data-label
// and text content.
func NewOption(value, label, text string) *Element {
	e := NewElement("li").SetAttr("role", "option").SetText(text)
	if value != "" {
		e.SetData("value", value)
	}
	if label != "" {
		e.SetData("label", label)
	}
	return e
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// SetID changes the id, keeping the owning document's index current.
func (e *Element) SetID(id string) *Element {
	if e.doc != nil {
		e.doc.unindex(e)
	}
	e.id = id
	if e.doc != nil {
		e.doc.index(e)
	}
	return e
}

// Slot returns the name of the slot this element is assigned to.
func (e *Element) Slot() string { return e.slot }

// SetSlot assigns the element to a named slot of its parent.
func (e *Element) SetSlot(name string) *Element {
	e.slot = name
	return e
}

// SetText sets the element's own text.
func (e *Element) SetText(s string) *Element {
	e.text = s
	return e
}

// Text returns the element's own text, excluding children.
func (e *Element) Text() string { return e.text }

// TextContent concatenates the element's text with its descendants', the
// way innerText flattens a subtree. Whitespace is collapsed.
func (e *Element) TextContent() string {
	var parts []string
	e.walk(func(n *Element) {
		if t := strings.TrimSpace(n.text); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// SetAttr sets a plain attribute.
func (e *Element) SetAttr(name, value string) *Element {
	e.attrs[name] = value
	return e
}

// RemoveAttr deletes a plain attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Attr returns an attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns a copy of all plain attributes.
func (e *Element) Attrs() map[string]string {
	return maps.Clone(e.attrs)
}

// SetData sets a data-* attribute (key without the "data-" prefix).
func (e *Element) SetData(key, value string) *Element {
	e.dataset[key] = value
	return e
}

// Data returns a data-* attribute and whether it is present.
func (e *Element) Data(key string) (string, bool) {
	v, ok := e.dataset[key]
	return v, ok
}

// Dataset returns a copy of the element's data-* attributes.
func (e *Element) Dataset() map[string]string {
	return maps.Clone(e.dataset)
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// AppendChild attaches child as the last child, detaching it from any
// previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil {
		return e
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	if e.doc != nil {
		e.doc.adopt(child)
	}
	return e
}

// ReplaceChildren removes all children and appends the given ones.
// With no arguments it empties the element.
func (e *Element) ReplaceChildren(children ...*Element) {
	for _, c := range e.children {
		c.parent = nil
		if e.doc != nil {
			e.doc.release(c)
		}
	}
	e.children = nil
	for _, c := range children {
		e.AppendChild(c)
	}
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
	if p.doc != nil {
		p.doc.release(e)
	}
}

// Closest returns the nearest ancestor-or-self with the given tag.
func (e *Element) Closest(tag string) *Element {
	for n := e; n != nil; n = n.parent {
		if n.Tag == tag {
			return n
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}
