package autocomplete

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/dom"
)

// Activate opens the field the way a click does.
func (a *Autocomplete) Activate() tea.Cmd {
	if a.detached {
		return nil
	}
	return a.activate()
}

// activate: Closed/Selected -> Open. Reopening always starts from an empty
// field so a previous query is never shown again.
func (a *Autocomplete) activate() tea.Cmd {
	a.focused = true
	if a.state.editing() {
		return nil
	}
	from := a.state
	a.state = StateOpen
	a.searchText = ""
	a.input.SetValue("")
	a.refresh()
	a.log.Logf("%s -> %s (activate)", from, a.state)
	return a.requestFocus()
}

// cancel: Open/Searching/Selected -> Closed. The in-flight text is dropped in
// favor of the committed label, and CloseMsg carries the text that was shown.
func (a *Autocomplete) cancel() tea.Cmd {
	if a.state == StateClosed {
		return nil
	}
	from := a.state
	query := a.searchText
	if from.editing() {
		query = a.input.Value()
	}

	a.state = StateClosed
	a.input.Blur()
	a.input.SetValue("")
	a.searchText = a.label
	// Focus returns to the widget itself.
	a.focused = true
	a.refresh()
	a.log.Logf("%s -> %s (cancel, query=%q)", from, a.state, query)

	source := a.cfg.Name
	return func() tea.Msg {
		return CloseMsg{Source: source, Query: query}
	}
}

// inputChanged records new text from the field and schedules a debounced
// evaluation.
func (a *Autocomplete) inputChanged(text string) tea.Cmd {
	a.searchText = text
	a.refresh()
	return a.debouncer.Call(text, a.evaluate)
}

// evaluate runs once per debounce window with the latest text. A late window
// (after Escape or a commit) still emits; only Open/Searching change state.
func (a *Autocomplete) evaluate(query string) tea.Cmd {
	if utf8.RuneCountInString(query) < a.cfg.MinLength {
		if a.state == StateSearching {
			a.state = StateOpen
			a.log.Logf("searching -> open (query below min length)")
		}
		return nil
	}
	if a.state == StateOpen {
		a.state = StateSearching
		a.log.Logf("open -> searching (query=%q)", query)
	}
	source := a.cfg.Name
	return func() tea.Msg {
		return SearchMsg{Source: source, Query: query}
	}
}

// commit: any state -> Selected with the item's value and label. Items
// without data-value use their text for both.
func (a *Autocomplete) commit(item *dom.Element) tea.Cmd {
	dataset := cloneDataset(item.Dataset())
	text := item.TextContent()
	value, ok := dataset["value"]
	if !ok {
		value = text
		dataset["value"] = text
	}
	label := text
	if l, ok := dataset["label"]; ok && l != "" {
		label = l
	}

	from := a.state
	a.state = StateSelected
	a.value = &value
	a.label = label
	a.searchText = label
	a.input.Blur()
	a.input.SetValue("")
	a.focused = true
	if a.cfg.ClearListOnSelect && a.list != nil {
		a.list.ReplaceChildren()
	}
	a.refresh()
	a.log.Logf("%s -> %s (commit value=%q label=%q)", from, a.state, value, label)

	source := a.cfg.Name
	return func() tea.Msg {
		return CommitMsg{Source: source, Dataset: dataset}
	}
}

// Select commits item as a pointer selection on the candidate list.
func (a *Autocomplete) Select(item *dom.Element) tea.Cmd {
	if a.detached || a.list == nil {
		return nil
	}
	return a.binder.Select(a.list, item)
}

// SetValue assigns a value and its display text programmatically. No
// CommitMsg is emitted.
func (a *Autocomplete) SetValue(value, label string) {
	if a.detached {
		return
	}
	a.value = &value
	a.label = label
	if !a.state.editing() {
		a.searchText = label
	}
	a.refresh()
}

// Reset restores the initial value and text and closes the field. Registered
// as the form reset callback.
func (a *Autocomplete) Reset() {
	if a.detached {
		return
	}
	a.debouncer.Cancel()
	a.state = StateClosed
	a.input.Blur()
	a.input.SetValue("")
	a.searchText = a.initialText
	a.label = a.initialText
	if a.initialValue != nil {
		v := *a.initialValue
		a.value = &v
	} else {
		a.value = nil
		a.formSync.Clear()
	}
	a.refresh()
	a.log.Logf("reset")
}

func (a *Autocomplete) requestFocus() tea.Cmd {
	msg := FocusMsg{Source: a.cfg.Name, owner: a}
	return func() tea.Msg { return msg }
}
