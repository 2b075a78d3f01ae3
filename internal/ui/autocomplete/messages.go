package autocomplete

import "maps"

// SearchMsg requests matches for Query. Hosts should tolerate late
// arrivals: a window that started before Escape may still deliver one.
type SearchMsg struct {
	Source string
	Query  string
}

// CommitMsg announces a committed option. Dataset holds the option's data
// attributes and always includes "value".
type CommitMsg struct {
	Source  string
	Dataset map[string]string
}

// Value returns the committed machine value.
func (m CommitMsg) Value() string { return m.Dataset["value"] }

// Label returns the option's explicit label, if it had one.
func (m CommitMsg) Label() (string, bool) {
	l, ok := m.Dataset["label"]
	return l, ok
}

// CloseMsg announces cancellation. Query is the text that was in the field.
type CloseMsg struct {
	Source string
	Query  string
}

// FocusMsg is the deferred focus request: the text field receives focus when
// this message comes back through Update, i.e. after the render that created
// it. Hosts may observe it to track which field owns the keyboard.
type FocusMsg struct {
	Source string
	owner  *Autocomplete
}

// ActivateMsg opens the field as a click would. Target selects which
// widget; a nil Target activates whichever widget receives it.
type ActivateMsg struct {
	Target *Autocomplete
}

func cloneDataset(ds map[string]string) map[string]string {
	if ds == nil {
		return map[string]string{}
	}
	return maps.Clone(ds)
}
