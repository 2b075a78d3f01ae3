package autocomplete

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autocomplete/internal/ui/combobox"
)

// Update implements tea.Model. Hosts forward every message; the widget picks
// out its own by owner or list identity.
func (a *Autocomplete) Update(msg tea.Msg) (*Autocomplete, tea.Cmd) {
	if a.detached {
		return a, nil
	}
	// The host may have swapped or emptied the list since the last message.
	a.refresh()

	switch msg := msg.(type) {
	case debounceMsg:
		if query, ok := a.debouncer.Accept(msg); ok {
			return a, a.evaluate(query)
		}
		return a, nil

	case FocusMsg:
		if msg.owner == a && a.state.editing() {
			return a, a.input.Focus()
		}
		return a, nil

	case ActivateMsg:
		if msg.Target == nil || msg.Target == a {
			return a, a.activate()
		}
		return a, nil

	case combobox.CommitMsg:
		if a.binder.Accepts(msg, a.list) {
			return a, a.commit(msg.Item)
		}
		return a, nil

	case tea.KeyMsg:
		if !a.focused {
			return a, nil
		}
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	if a.state.editing() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *Autocomplete) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state {
	case StateClosed, StateSelected:
		return a.handlePassiveKey(msg)
	case StateOpen, StateSearching:
		return a.handleEditingKey(msg)
	}
	return nil
}

func (a *Autocomplete) handlePassiveKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		return a.cancel()
	case tea.KeyEnter, tea.KeySpace, tea.KeyDown, tea.KeyRunes:
		// Keyboard activation; the key itself is consumed.
		return a.activate()
	}
	return nil
}

func (a *Autocomplete) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc {
		return a.cancel()
	}
	if handled, cmd := a.binder.HandleKey(msg); handled {
		return cmd
	}

	old := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if text := a.input.Value(); text != old {
		return tea.Batch(cmd, a.inputChanged(text))
	}
	return cmd
}

// handleMouse maps a left click inside the widget: on the field it
// activates, on a rendered option it selects that option.
func (a *Autocomplete) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	x, y := msg.X-a.originX, msg.Y-a.originY
	if x < 0 || x >= a.Width || y < 0 {
		return nil
	}

	fieldHeight := lipgloss.Height(a.fieldView())
	if y < fieldHeight {
		return a.activate()
	}
	if !a.ownsList() {
		return nil
	}
	if item := a.OptionAt(y - fieldHeight); item != nil {
		a.focused = true
		return a.Select(item)
	}
	return nil
}
