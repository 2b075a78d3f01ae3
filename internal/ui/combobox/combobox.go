// Package combobox implements keyboard navigation over a candidate list:
// arrow keys move an "active" marker among the list's options and Enter
// (or Tab) commits the active option.
package combobox

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/dom"
)

// Input is the text field the session intercepts keys for.
type Input interface {
	Focused() bool
}

// CommitMsg is sent when an option is chosen by keyboard or pointer.
type CommitMsg struct {
	List *dom.Element
	Item *dom.Element
}

// KeyMap holds the navigation bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Commit key.Binding
	Insert key.Binding
}

// DefaultKeyMap mirrors common combobox conventions.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next option"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous option"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select option"),
		),
		Insert: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select option"),
		),
	}
}

// Combobox is a navigation session binding one input to one list.
type Combobox struct {
	MaxVisible int // Max options in the visible window (default 5)

	input        Input
	list         *dom.Element
	keys         KeyMap
	active       *dom.Element
	scrollOffset int
	started      bool
}

// New creates a stopped session for input and list.
func New(input Input, list *dom.Element) *Combobox {
	return &Combobox{
		MaxVisible: 5,
		input:      input,
		list:       list,
		keys:       DefaultKeyMap(),
	}
}

// WithKeyMap replaces the navigation bindings.
func (c *Combobox) WithKeyMap(km KeyMap) *Combobox {
	c.keys = km
	return c
}

// Start begins intercepting keys.
func (c *Combobox) Start() {
	c.started = true
}

// Stop ends the session and clears the active marker. Safe to call repeatedly.
func (c *Combobox) Stop() {
	c.started = false
	c.Clear()
}

// Started reports whether the session is intercepting keys.
func (c *Combobox) Started() bool { return c.started }

// List returns the list this session is bound to.
func (c *Combobox) List() *dom.Element { return c.list }

// KeyMap returns the navigation bindings, for help rendering.
func (c *Combobox) KeyMap() KeyMap { return c.keys }

// Options returns the list's selectable options.
func (c *Combobox) Options() []*dom.Element {
	return Options(c.list)
}

// Options returns the selectable children of list: every child not marked
// aria-disabled="true" or hidden.
func Options(list *dom.Element) []*dom.Element {
	if list == nil {
		return nil
	}
	var out []*dom.Element
	for _, child := range list.Children() {
		if disabled, _ := child.Attr("aria-disabled"); disabled == "true" {
			continue
		}
		if _, hidden := child.Attr("hidden"); hidden {
			continue
		}
		out = append(out, child)
	}
	return out
}

// Active returns the option carrying the active marker, or nil. An active
// option that has since left the list is dropped.
func (c *Combobox) Active() *dom.Element {
	if c.ActiveIndex() < 0 {
		c.active = nil
	}
	return c.active
}

// ActiveIndex returns the active option's index within Options, or -1.
func (c *Combobox) ActiveIndex() int {
	if c.active == nil {
		return -1
	}
	return slices.Index(c.Options(), c.active)
}

// Navigate moves the active marker by delta, wrapping at both ends. With no
// active option, moving forward lands on the first option and moving back
// on the last.
func (c *Combobox) Navigate(delta int) {
	opts := c.Options()
	if len(opts) == 0 || delta == 0 {
		return
	}
	idx := c.ActiveIndex()
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(opts) - 1
	default:
		next = ((idx+delta)%len(opts) + len(opts)) % len(opts)
	}
	c.active = opts[next]
	c.adjustScrollOffset(next, len(opts))
}

// SetActive places the marker on item if it is one of the options.
func (c *Combobox) SetActive(item *dom.Element) bool {
	opts := c.Options()
	idx := slices.Index(opts, item)
	if idx < 0 {
		return false
	}
	c.active = item
	c.adjustScrollOffset(idx, len(opts))
	return true
}

// Clear removes the active marker.
func (c *Combobox) Clear() {
	c.active = nil
	c.scrollOffset = 0
}

// HandleKey intercepts navigation keys. It reports whether the key was
// consumed; unconsumed keys belong to the text field.
func (c *Combobox) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !c.started {
		return false, nil
	}
	if c.input != nil && !c.input.Focused() {
		return false, nil
	}
	switch {
	case key.Matches(msg, c.keys.Next):
		c.Navigate(1)
		return true, nil
	case key.Matches(msg, c.keys.Prev):
		c.Navigate(-1)
		return true, nil
	case key.Matches(msg, c.keys.Commit), key.Matches(msg, c.keys.Insert):
		if c.Active() == nil {
			return false, nil
		}
		return true, c.Commit()
	}
	return false, nil
}

// Commit returns a command announcing the active option, or nil.
func (c *Combobox) Commit() tea.Cmd {
	item := c.Active()
	if item == nil {
		return nil
	}
	return Select(c.list, item)
}

// Click commits item as a pointer selection when it belongs to the list.
func (c *Combobox) Click(item *dom.Element) tea.Cmd {
	if !c.SetActive(item) {
		return nil
	}
	return Select(c.list, item)
}

// Select returns a command announcing item as chosen from list. It needs no
// session, so pointer selection works even while navigation is unbound.
func Select(list, item *dom.Element) tea.Cmd {
	if list == nil || item == nil || item.Parent() != list {
		return nil
	}
	return func() tea.Msg {
		return CommitMsg{List: list, Item: item}
	}
}

// Window returns the [start, end) range of Options to render so the active
// option stays visible.
func (c *Combobox) Window() (int, int) {
	n := len(c.Options())
	if idx := c.ActiveIndex(); idx >= 0 {
		c.adjustScrollOffset(idx, n)
	} else {
		c.clampScrollOffset(n)
	}
	end := c.scrollOffset + c.maxVisible()
	if end > n {
		end = n
	}
	return c.scrollOffset, end
}

func (c *Combobox) maxVisible() int {
	if c.MaxVisible <= 0 {
		return 5
	}
	return c.MaxVisible
}

// adjustScrollOffset ensures the active option is inside the visible window.
func (c *Combobox) adjustScrollOffset(idx, n int) {
	if idx < c.scrollOffset {
		c.scrollOffset = idx
	}
	if idx >= c.scrollOffset+c.maxVisible() {
		c.scrollOffset = idx - c.maxVisible() + 1
	}
	c.clampScrollOffset(n)
}

func (c *Combobox) clampScrollOffset(n int) {
	maxOffset := n - c.maxVisible()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}
