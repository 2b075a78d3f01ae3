// Package autocomplete implements a form-participating autocomplete field.
//
// As the user types, the widget emits debounced SearchMsg requests; the host
// answers by filling the candidate list (a dom element the host owns). The
// user picks an option with the keyboard, through a combobox navigation
// session, or with the pointer, and the widget commits its value, emits
// CommitMsg and mirrors the value into the enclosing form.
package autocomplete

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/debug"
	"autocomplete/internal/dom"
	"autocomplete/internal/form"
	"autocomplete/internal/ui/combobox"
)

// Autocomplete is the widget. All methods must be called from the
// bubbletea event loop.
type Autocomplete struct {
	Width      int // Visual width including border (default 40)
	MaxVisible int // Max options rendered from the list (default 5)

	cfg  Config
	doc  *dom.Document
	host *dom.Element

	state      State
	value      *string
	label      string // display text of the committed value
	searchText string
	focused    bool
	detached   bool

	input       textinput.Model
	defaultSlot *dom.Slot
	listSlot    *dom.Slot
	list        *dom.Element

	binder    *Binder
	debouncer *Debouncer
	internals *form.Internals
	formSync  *FormSync

	originX, originY int

	initialValue *string
	initialText  string

	log debug.Scope
}

// Option configures New.
type Option func(*options)

type options struct {
	base         Config
	width        int
	maxVisible   int
	keys         combobox.KeyMap
	staticCursor bool
}

// WithDefaults sets the configuration that attributes are overlaid on.
func WithDefaults(cfg Config) Option {
	return func(o *options) { o.base = cfg }
}

// WithWidth sets the visual width.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// WithMaxVisible sets how many options are rendered at once.
func WithMaxVisible(n int) Option {
	return func(o *options) { o.maxVisible = n }
}

// WithKeyMap replaces the navigation bindings.
func WithKeyMap(km combobox.KeyMap) Option {
	return func(o *options) { o.keys = km }
}

// WithStaticCursor disables cursor blinking in the text field.
func WithStaticCursor() Option {
	return func(o *options) { o.staticCursor = true }
}

// New attaches a widget to host, reading its configuration from the host's
// attributes. doc resolves an external list reference; it may be nil when
// only the slotted list is used.
func New(doc *dom.Document, host *dom.Element, opts ...Option) *Autocomplete {
	o := options{
		base:       DefaultConfig(),
		width:      40,
		maxVisible: 5,
		keys:       combobox.DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := ParseAttributes(host.Attrs(), o.base)

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Prompt = "> "
	ti.Placeholder = cfg.Placeholder
	if o.staticCursor {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}

	a := &Autocomplete{
		Width:       o.width,
		MaxVisible:  o.maxVisible,
		cfg:         cfg,
		doc:         doc,
		host:        host,
		state:       StateClosed,
		searchText:  cfg.SearchText,
		label:       cfg.SearchText,
		input:       ti,
		defaultSlot: dom.NewSlot(host, ""),
		listSlot:    dom.NewSlot(host, "list"),
		binder:      NewBinder(o.keys, o.maxVisible),
		debouncer:   NewDebouncer(cfg.Debounce),
		initialText: cfg.SearchText,
		log:         debug.Scope("autocomplete[" + cfg.Name + "]"),
	}
	a.input.Width = a.inputWidth()
	if cfg.Value != nil {
		v := *cfg.Value
		a.value = &v
		a.initialValue = &v
	}
	if err != nil {
		a.log.Logf("attribute errors, using defaults: %v", err)
	}

	a.internals = form.Attach(host, cfg.Name)
	a.internals.OnReset(a.Reset)
	a.formSync = NewFormSync(a.internals)

	if cfg.Open {
		a.state = StateOpen
		a.focused = true
		a.input.SetValue(a.searchText)
	}
	a.refresh()
	return a
}

// Init implements tea.Model. An initially open widget requests focus for its
// text field.
func (a *Autocomplete) Init() tea.Cmd {
	if a.state.editing() {
		return a.requestFocus()
	}
	return nil
}

// Name returns the form field name.
func (a *Autocomplete) Name() string { return a.cfg.Name }

// Config returns the parsed configuration.
func (a *Autocomplete) Config() Config { return a.cfg }

// Host returns the element the widget is attached to.
func (a *Autocomplete) Host() *dom.Element { return a.host }

// State returns the visual state.
func (a *Autocomplete) State() State { return a.state }

// States returns the custom pseudo-states that currently hold.
func (a *Autocomplete) States() []string { return a.state.pseudoStates() }

// HasState reports whether the pseudo-state holds.
func (a *Autocomplete) HasState(s string) bool {
	for _, cur := range a.States() {
		if cur == s {
			return true
		}
	}
	return false
}

// Value returns the committed value and whether one exists.
func (a *Autocomplete) Value() (string, bool) {
	if a.value == nil {
		return "", false
	}
	return *a.value, true
}

// SearchText returns the text shown in (or for) the field.
func (a *Autocomplete) SearchText() string { return a.searchText }

// DisplayText returns the human-visible text; after a commit this is the
// option's label.
func (a *Autocomplete) DisplayText() string { return a.searchText }

// List returns the resolved candidate list, or nil.
func (a *Autocomplete) List() *dom.Element { return a.list }

// Session returns the live navigation session, or nil.
func (a *Autocomplete) Session() *combobox.Combobox { return a.binder.Session() }

// InputVisible reports whether the text field is rendered.
func (a *Autocomplete) InputVisible() bool { return a.state.editing() }

// InputFocused reports whether the text field holds keyboard focus.
func (a *Autocomplete) InputFocused() bool {
	return a.state.editing() && a.input.Focused()
}

// Focused reports whether the widget owns keyboard input in its host.
func (a *Autocomplete) Focused() bool { return a.focused }

// Focus gives the widget keyboard input. It does not open the field; typing
// or Enter does.
func (a *Autocomplete) Focus() tea.Cmd {
	a.focused = true
	if a.state.editing() {
		return a.input.Focus()
	}
	return nil
}

// Blur takes keyboard input away. The visual state is kept.
func (a *Autocomplete) Blur() {
	a.focused = false
	a.input.Blur()
}

// SetOrigin records where the host drew the widget, for pointer hit tests.
func (a *Autocomplete) SetOrigin(x, y int) {
	a.originX, a.originY = x, y
}

// SetWidth changes the visual width.
func (a *Autocomplete) SetWidth(w int) {
	a.Width = w
	a.input.Width = a.inputWidth()
}

// Detached reports whether Detach has run.
func (a *Autocomplete) Detached() bool { return a.detached }

// Detach releases the navigation session, drops any pending debounce window
// and leaves the form. After Detach, Update ignores all messages.
func (a *Autocomplete) Detach() {
	if a.detached {
		return
	}
	a.detached = true
	a.binder.Release()
	a.debouncer.Cancel()
	a.internals.Detach()
	a.input.Blur()
	a.focused = false
	a.log.Logf("detached")
}

// refresh is the reconciliation pass run after every transition: resolve
// the list, rebind navigation if an endpoint changed, and sync the form.
func (a *Autocomplete) refresh() {
	a.list = ResolveList(a.doc, a.cfg.List, a.listSlot)
	var in combobox.Input
	if a.state.editing() {
		in = &a.input
	}
	if a.binder.Reconcile(in, a.list) {
		a.log.Logf("navigation session rebound (list=%p)", a.binder.Bound())
	}
	a.formSync.Notify(a.value, a.searchText)
}

func (a *Autocomplete) inputWidth() int {
	// border (2) + padding (2) + prompt (2)
	w := a.Width - 6
	if w < 1 {
		w = 1
	}
	return w
}
