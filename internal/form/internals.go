package form

import (
	"sync"

	"autocomplete/internal/dom"
)

// Internals is a field's handle into form submission. The zero value is not
// usable; call Attach.
type Internals struct {
	mu      sync.RWMutex
	host    *dom.Element
	name    string
	value   *string
	state   string
	onReset func()
}

// Attach makes host a form-associated field submitted under name.
func Attach(host *dom.Element, name string) *Internals {
	in := &Internals{host: host, name: name}
	registry.mu.Lock()
	registry.internals[host] = in
	registry.mu.Unlock()
	return in
}

// Detach removes the association. Safe to call more than once.
func (in *Internals) Detach() {
	if in == nil {
		return
	}
	registry.mu.Lock()
	if registry.internals[in.host] == in {
		delete(registry.internals, in.host)
	}
	registry.mu.Unlock()
}

// Form returns the form currently enclosing the host, or nil.
func (in *Internals) Form() *Form {
	if in == nil || in.host == nil {
		return nil
	}
	return lookup(in.host.Closest(formTag))
}

// SetName changes the submission name.
func (in *Internals) SetName(name string) {
	in.mu.Lock()
	in.name = name
	in.mu.Unlock()
}

// SetFormValue sets the submission value and the accompanying state (the
// human-readable text used for restoration and validation messages).
func (in *Internals) SetFormValue(value, state string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.value = &value
	in.state = state
}

// ClearFormValue removes the field from submission data.
func (in *Internals) ClearFormValue() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.value = nil
	in.state = ""
}

// Value returns the submission value and whether one is set.
func (in *Internals) Value() (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.value == nil {
		return "", false
	}
	return *in.value, true
}

// State returns the display state recorded with the last SetFormValue.
func (in *Internals) State() string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.state
}

// OnReset registers the callback run when the enclosing form resets.
func (in *Internals) OnReset(fn func()) {
	in.mu.Lock()
	in.onReset = fn
	in.mu.Unlock()
}

func (in *Internals) entry() (string, string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if in.value == nil || in.name == "" {
		return "", "", false
	}
	return in.name, *in.value, true
}

func (in *Internals) reset() {
	in.mu.RLock()
	fn := in.onReset
	in.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
