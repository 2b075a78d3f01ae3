package catalog

import "autocomplete/internal/dom"

// Entry is one selectable catalog row.
type Entry struct {
	Kind   string
	Value  string // machine value, submitted with the form
	Label  string // optional display label
	Text   string // option text
	Parent string // value of the enclosing entry (a city's country)
}

// Display returns the label, falling back to the text.
func (e Entry) Display() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Text
}

// Element renders the entry as an option element.
func (e Entry) Element() *dom.Element {
	el := dom.NewOption(e.Value, e.Label, e.Text)
	if e.Parent != "" {
		el.SetData("parent", e.Parent)
	}
	return el
}

// Elements renders entries as option elements, in order.
func Elements(entries []Entry) []*dom.Element {
	out := make([]*dom.Element, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Element())
	}
	return out
}
