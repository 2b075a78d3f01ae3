package autocomplete

import "autocomplete/internal/form"

// FormSync projects the committed value into the enclosing form's
// submission data, with the display text as the accompanying state.
type FormSync struct {
	internals *form.Internals
	synced    bool
	lastValue string
	lastText  string
}

// NewFormSync wraps internals; nil internals make every call a no-op.
func NewFormSync(internals *form.Internals) *FormSync {
	return &FormSync{internals: internals}
}

// Notify is the value-changed notification. It writes to the form when a
// value exists, the field is inside a form, and something changed since the
// last write. Returns whether it wrote.
func (s *FormSync) Notify(value *string, text string) bool {
	if s.internals == nil || value == nil || s.internals.Form() == nil {
		return false
	}
	if s.synced && s.lastValue == *value && s.lastText == text {
		return false
	}
	s.internals.SetFormValue(*value, text)
	s.synced = true
	s.lastValue = *value
	s.lastText = text
	return true
}

// Clear removes the field from submission data.
func (s *FormSync) Clear() {
	s.synced = false
	if s.internals != nil {
		s.internals.ClearFormValue()
	}
}
