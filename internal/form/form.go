// Package form provides form association for custom fields: a field attaches
// Internals to its host element, and the enclosing Form collects submission
// data from every associated field in its subtree.
package form

import (
	"net/url"
	"sync"

	"autocomplete/internal/dom"
)

const formTag = "form"

var registry = struct {
	mu        sync.RWMutex
	forms     map[*dom.Element]*Form
	internals map[*dom.Element]*Internals
}{
	forms:     make(map[*dom.Element]*Form),
	internals: make(map[*dom.Element]*Internals),
}

// Form is the host form wrapping a <form> element.
type Form struct {
	el *dom.Element
}

// New wraps el (which should have the "form" tag) and registers it so fields
// inside it can find their form.
func New(el *dom.Element) *Form {
	f := &Form{el: el}
	registry.mu.Lock()
	registry.forms[el] = f
	registry.mu.Unlock()
	return f
}

// Element returns the wrapped form element.
func (f *Form) Element() *dom.Element { return f.el }

// Close unregisters the form.
func (f *Form) Close() {
	registry.mu.Lock()
	delete(registry.forms, f.el)
	registry.mu.Unlock()
}

// FormData returns the submission entries of every associated field and
// every named <input> in document order.
func (f *Form) FormData() url.Values {
	data := url.Values{}
	f.each(func(e *dom.Element, in *Internals) {
		if in != nil {
			if name, value, ok := in.entry(); ok {
				data.Add(name, value)
			}
			return
		}
		if e.Tag != "input" {
			return
		}
		name, ok := e.Attr("name")
		if !ok || name == "" {
			return
		}
		value, _ := e.Attr("value")
		data.Add(name, value)
	})
	return data
}

// Reset invokes the reset callback of every associated field.
func (f *Form) Reset() {
	f.each(func(_ *dom.Element, in *Internals) {
		if in != nil {
			in.reset()
		}
	})
}

func (f *Form) each(fn func(*dom.Element, *Internals)) {
	var walk func(*dom.Element)
	walk = func(e *dom.Element) {
		registry.mu.RLock()
		in := registry.internals[e]
		registry.mu.RUnlock()
		fn(e, in)
		for _, c := range e.Children() {
			walk(c)
		}
	}
	for _, c := range f.el.Children() {
		walk(c)
	}
}

func lookup(el *dom.Element) *Form {
	if el == nil {
		return nil
	}
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.forms[el]
}
