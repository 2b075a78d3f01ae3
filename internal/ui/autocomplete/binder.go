package autocomplete

import (
	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/dom"
	"autocomplete/internal/ui/combobox"
)

// Binder owns the navigation session. It keeps exactly one live session bound
// to the current list while a text field exists, and none otherwise.
type Binder struct {
	session    *combobox.Combobox
	keys       combobox.KeyMap
	maxVisible int
}

// NewBinder creates a binder whose sessions use keys and show maxVisible options.
func NewBinder(keys combobox.KeyMap, maxVisible int) *Binder {
	return &Binder{keys: keys, maxVisible: maxVisible}
}

// Reconcile brings the session in line with the given endpoints. A nil input
// means the text field is not rendered. Returns true if a session was
// created or released.
func (b *Binder) Reconcile(input combobox.Input, list *dom.Element) bool {
	changed := false
	if b.session != nil && (input == nil || b.session.List() != list) {
		b.Release()
		changed = true
	}
	if b.session == nil && input != nil && list != nil {
		b.session = combobox.New(input, list).WithKeyMap(b.keys)
		b.session.MaxVisible = b.maxVisible
		b.session.Start()
		changed = true
	}
	return changed
}

// Release stops and drops the session. Idempotent.
func (b *Binder) Release() {
	if b.session == nil {
		return
	}
	b.session.Stop()
	b.session = nil
}

// Session returns the live session, or nil.
func (b *Binder) Session() *combobox.Combobox { return b.session }

// Bound returns the list the live session is bound to, or nil.
func (b *Binder) Bound() *dom.Element {
	if b.session == nil {
		return nil
	}
	return b.session.List()
}

// HandleKey forwards a key to the live session.
func (b *Binder) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if b.session == nil {
		return false, nil
	}
	return b.session.HandleKey(msg)
}

// Accepts reports whether a commit belongs to list, the widget's resolved
// candidate list. Commits from other lists are ignored.
func (b *Binder) Accepts(msg combobox.CommitMsg, list *dom.Element) bool {
	return list != nil && msg.List == list && msg.Item != nil
}

// Select routes a pointer selection through the session when one exists so
// the active marker follows the click.
func (b *Binder) Select(list, item *dom.Element) tea.Cmd {
	if b.session != nil && b.session.List() == list {
		return b.session.Click(item)
	}
	return combobox.Select(list, item)
}

// ResolveList finds the candidate list: an explicit id reference wins;
// otherwise the first element assigned to the list slot. Nil when neither
// exists.
func ResolveList(doc *dom.Document, listID string, slot *dom.Slot) *dom.Element {
	if listID != "" {
		return doc.GetElementByID(listID)
	}
	if assigned := slot.AssignedElements(); len(assigned) > 0 {
		return assigned[0]
	}
	return nil
}
