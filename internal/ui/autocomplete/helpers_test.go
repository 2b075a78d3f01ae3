package autocomplete

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/dom"
	"autocomplete/internal/ui/combobox"
)

// harness emulates the host event loop: internal messages are fed back into
// the widget, outbound ones are collected.
type harness struct {
	t   *testing.T
	doc *dom.Document
	a   *Autocomplete
	out []tea.Msg
}

func newHarness(t *testing.T, host *dom.Element) *harness {
	t.Helper()
	doc := dom.NewDocument()
	doc.Body().AppendChild(rootOf(host))
	a := New(doc, host, WithStaticCursor())
	t.Cleanup(a.Detach)
	h := &harness{t: t, doc: doc, a: a}
	h.settle(a.Init())
	return h
}

func rootOf(e *dom.Element) *dom.Element {
	for e.Parent() != nil {
		e = e.Parent()
	}
	return e
}

// fixture builds <autocomplete-input attrs...><ul slot="list">options</ul></autocomplete-input>.
func fixture(attrs map[string]string, options ...*dom.Element) (*dom.Element, *dom.Element) {
	host := dom.NewElement("autocomplete-input")
	for k, v := range attrs {
		host.SetAttr(k, v)
	}
	list := dom.NewElement("ul").SetSlot("list")
	for _, o := range options {
		list.AppendChild(o)
	}
	host.AppendChild(list)
	return host, list
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	_, cmd := h.a.Update(msg)
	h.settle(cmd)
}

func (h *harness) settle(cmds ...tea.Cmd) {
	h.t.Helper()
	for _, cmd := range cmds {
		for _, msg := range drain(cmd) {
			switch msg.(type) {
			case debounceMsg, FocusMsg, combobox.CommitMsg:
				h.send(msg)
			default:
				h.out = append(h.out, msg)
			}
		}
	}
}

// burst types s without letting any debounce window elapse and returns the
// pending commands.
func (h *harness) burst(s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range s {
		_, cmd := h.a.Update(runeKey(r))
		cmds = append(cmds, cmd)
	}
	return cmds
}

func (h *harness) typeText(s string) {
	h.t.Helper()
	for _, r := range s {
		h.send(runeKey(r))
	}
}

func (h *harness) key(t tea.KeyType) {
	h.t.Helper()
	h.send(tea.KeyMsg{Type: t})
}

func (h *harness) take() []tea.Msg {
	out := h.out
	h.out = nil
	return out
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func searches(msgs []tea.Msg) []SearchMsg {
	var out []SearchMsg
	for _, m := range msgs {
		if s, ok := m.(SearchMsg); ok {
			out = append(out, s)
		}
	}
	return out
}

func commits(msgs []tea.Msg) []CommitMsg {
	var out []CommitMsg
	for _, m := range msgs {
		if c, ok := m.(CommitMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func closes(msgs []tea.Msg) []CloseMsg {
	var out []CloseMsg
	for _, m := range msgs {
		if c, ok := m.(CloseMsg); ok {
			out = append(out, c)
		}
	}
	return out
}
