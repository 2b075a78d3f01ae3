package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autocomplete/internal/catalog"
	"autocomplete/internal/config"
	"autocomplete/internal/debug"
	"autocomplete/internal/dom"
	"autocomplete/internal/form"
	"autocomplete/internal/ui/autocomplete"
	"autocomplete/internal/ui/canvas"
	"autocomplete/internal/ui/combobox"
	"autocomplete/internal/ui/theme"
)

const (
	fieldCountry = "country"
	fieldCity    = "city"
	cityListID   = "city-options"

	fieldWidth    = 44
	searchTimeout = 2 * time.Second
	toastDuration = 3 * time.Second
)

type appConfig struct {
	Store        *catalog.Store
	Limit        int
	Defaults     autocomplete.Config
	HelpFormat   string
	StaticCursor bool
}

// matchesMsg carries catalog results for one search request.
type matchesMsg struct {
	field   string
	query   string
	entries []catalog.Entry
	err     error
}

type toastExpiredMsg struct{ id int }

// App is the demo host: a form with a country field (slotted list) and a city
// field (external list), backed by the catalog.
type App struct {
	cfg  appConfig
	keys KeyMap
	log  debug.Scope

	doc         *dom.Document
	formEl      *dom.Element
	form        *form.Form
	countryList *dom.Element
	cityList    *dom.Element

	country *autocomplete.Autocomplete
	city    *autocomplete.Autocomplete
	fields  []*autocomplete.Autocomplete
	focus   int

	width, height int
	cityListY     int

	help     viewport.Model
	showHelp bool

	lastEvent string
	submitted string
	toast     string
	toastSeq  int
}

func newApp(cfg appConfig) *App {
	doc := dom.NewDocument()
	formEl := dom.NewElement("form")
	formEl.AppendChild(dom.NewElement("input").
		SetAttr("type", "hidden").
		SetAttr("name", "source").
		SetAttr("value", "autocomplete-demo"))

	countryHost := dom.NewElement("autocomplete-input").
		SetAttr("name", fieldCountry).
		SetAttr("placeholder", "Start typing a country…")
	countryList := dom.NewElement("ul").SetSlot("list")
	countryHost.AppendChild(countryList)

	cityHost := dom.NewElement("autocomplete-input").
		SetAttr("name", fieldCity).
		SetAttr("list", cityListID).
		SetAttr("clear-list-on-select", "").
		SetAttr("placeholder", "Start typing a city…")
	cityList := dom.NewElement("ul").SetID(cityListID)

	formEl.AppendChild(countryHost)
	formEl.AppendChild(cityHost)
	doc.Body().AppendChild(formEl)
	doc.Body().AppendChild(cityList)
	f := form.New(formEl)

	opts := []autocomplete.Option{
		autocomplete.WithDefaults(cfg.Defaults),
		autocomplete.WithWidth(fieldWidth),
		autocomplete.WithMaxVisible(6),
	}
	if cfg.StaticCursor {
		opts = append(opts, autocomplete.WithStaticCursor())
	}
	country := autocomplete.New(doc, countryHost, opts...)
	city := autocomplete.New(doc, cityHost, opts...)
	country.Focus()

	return &App{
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		log:         debug.Scope("demo"),
		doc:         doc,
		formEl:      formEl,
		form:        f,
		countryList: countryList,
		cityList:    cityList,
		country:     country,
		city:        city,
		fields:      []*autocomplete.Autocomplete{country, city},
		help:        viewport.New(0, 0),
		lastEvent:   "Press enter or start typing.",
	}
}

// Close detaches the fields and unregisters the form.
func (a *App) Close() {
	for _, f := range a.fields {
		f.Detach()
	}
	a.form.Close()
}

func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range a.fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resizeHelp()
		return a, nil

	case toastExpiredMsg:
		if msg.id == a.toastSeq {
			a.toast = ""
		}
		return a, nil

	case autocomplete.SearchMsg:
		return a, a.search(msg)

	case matchesMsg:
		a.applyMatches(msg)
		return a, nil

	case autocomplete.CommitMsg:
		label, _ := msg.Label()
		a.lastEvent = fmt.Sprintf("%s committed %q %s", msg.Source, msg.Value(), label)
		a.log.Logf("commit %s dataset=%v", msg.Source, msg.Dataset)
		if msg.Source == fieldCountry {
			a.cityList.ReplaceChildren()
		}
		return a, nil

	case autocomplete.CloseMsg:
		a.lastEvent = fmt.Sprintf("%s closed (query %q)", msg.Source, msg.Query)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	return a, a.broadcast(msg)
}

// broadcast forwards msg to every field; each picks out its own messages.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range a.fields {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.showHelp {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return tea.Quit
		case key.Matches(msg, a.keys.CloseHelp):
			a.showHelp = false
			return nil
		}
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return cmd
	}

	focused := a.fields[a.focus]
	editing := focused.InputVisible()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Submit):
		a.submitted = a.form.FormData().Encode()
		a.lastEvent = "form submitted"
		return a.showToast("Submitted: " + a.submitted)
	case key.Matches(msg, a.keys.Copy):
		return a.copyFormData()
	case key.Matches(msg, a.keys.Reset):
		a.form.Reset()
		a.submitted = ""
		a.lastEvent = "form reset"
		return nil
	case key.Matches(msg, a.keys.Theme):
		return a.cycleTheme()
	case !editing && key.Matches(msg, a.keys.Help):
		a.openHelp()
		return nil
	case !editing && key.Matches(msg, a.keys.NextField):
		return a.moveFocus(1)
	case !editing && key.Matches(msg, a.keys.PrevField):
		return a.moveFocus(-1)
	}

	_, cmd := focused.Update(msg)
	return cmd
}

func (a *App) moveFocus(delta int) tea.Cmd {
	a.fields[a.focus].Blur()
	n := len(a.fields)
	a.focus = ((a.focus+delta)%n + n) % n
	return a.fields[a.focus].Focus()
}

// handleMouse lets each field hit-test the click, then moves host focus to
// whichever field took it. Clicks on the external city list are resolved
// here since the city field does not draw that list.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.showHelp {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return cmd
	}
	cmd := a.broadcast(msg)
	for i, f := range a.fields {
		if i != a.focus && f.Focused() {
			a.fields[a.focus].Blur()
			a.focus = i
			break
		}
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y >= a.cityListY {
		if item := a.city.OptionAt(msg.Y - a.cityListY); item != nil {
			return tea.Batch(cmd, a.city.Select(item))
		}
	}
	return cmd
}

// search runs the catalog query for a SearchMsg off the event loop.
func (a *App) search(msg autocomplete.SearchMsg) tea.Cmd {
	store := a.cfg.Store
	if store == nil {
		return nil
	}
	kind := catalog.KindCountry
	parent := ""
	if msg.Source == fieldCity {
		kind = catalog.KindCity
		if v, ok := a.country.Value(); ok {
			parent = v
		}
	}
	limit := a.cfg.Limit
	a.log.Logf("search %s %q (parent=%q)", msg.Source, msg.Query, parent)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		entries, err := store.Search(ctx, kind, parent, msg.Query, limit)
		return matchesMsg{field: msg.Source, query: msg.Query, entries: entries, err: err}
	}
}

// applyMatches fills the field's list, dropping results for a query the
// field no longer shows.
func (a *App) applyMatches(msg matchesMsg) {
	if msg.err != nil {
		a.lastEvent = "search failed: " + msg.err.Error()
		a.log.Logf("search %s %q failed: %v", msg.field, msg.query, msg.err)
		return
	}
	field, list := a.country, a.countryList
	if msg.field == fieldCity {
		field, list = a.city, a.cityList
	}
	if field.SearchText() != msg.query {
		a.log.Logf("dropping stale matches for %s %q", msg.field, msg.query)
		return
	}
	list.ReplaceChildren(catalog.Elements(msg.entries)...)
	a.lastEvent = fmt.Sprintf("%d matches for %q", len(msg.entries), msg.query)
}

func (a *App) copyFormData() tea.Cmd {
	data := a.form.FormData().Encode()
	if err := clipboard.WriteAll(data); err != nil {
		a.log.Logf("clipboard: %v", err)
		return a.showToast("Clipboard unavailable.")
	}
	return a.showToast("Copied form data to clipboard.")
}

func (a *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	if err := config.SaveTheme(name); err != nil {
		a.log.Logf("save theme: %v", err)
		return a.showToast("Theme: " + name + " (not saved)")
	}
	return a.showToast("Theme: " + name)
}

func (a *App) showToast(text string) tea.Cmd {
	a.toastSeq++
	a.toast = text
	id := a.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (a *App) openHelp() {
	a.resizeHelp()
	a.showHelp = true
}

func (a *App) resizeHelp() {
	w := max(min(a.width-6, 80), 20)
	h := max(a.height-6, 5)
	a.help.Width = w
	a.help.Height = h
	render := buildMarkdownRenderer(a.cfg.HelpFormat, w-2)
	a.help.SetContent(render(helpMarkdown(a.keys, combobox.DefaultKeyMap())))
}

func (a *App) View() string {
	t := theme.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary())
	label := lipgloss.NewStyle().Foreground(t.TextMuted())
	muted := lipgloss.NewStyle().Foreground(t.TextMuted()).Italic(true)

	var blocks []string
	y := 0
	add := func(s string) {
		blocks = append(blocks, s)
		y += lipgloss.Height(s)
	}

	add(title.Render("Autocomplete demo"))
	add("")
	add(label.Render("Country"))
	a.country.SetOrigin(0, y)
	add(a.country.View())
	add(label.Render("City"))
	a.city.SetOrigin(0, y)
	add(a.city.View())
	a.cityListY = y
	if list := a.city.ListView(); list != "" {
		add(list)
	}
	add("")
	add(muted.Render(a.lastEvent))
	if a.submitted != "" {
		add(label.Render("Submitted: ") + a.submitted)
	}
	add("")
	add(muted.Render(footer(a.keys)))
	base := strings.Join(blocks, "\n")

	var overlays []func(*canvas.Canvas)
	if a.showHelp {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused()).
			Render(a.help.View())
		overlays = append(overlays, func(c *canvas.Canvas) { c.Center(box) })
	}
	if a.toast != "" {
		toast := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Success()).
			Padding(0, 1).
			Render(a.toast)
		overlays = append(overlays, func(c *canvas.Canvas) { c.BottomRight(toast, 1) })
	}
	if a.width <= 0 || a.height <= 0 {
		return base
	}
	return canvas.Compose(a.width, a.height, base, overlays...)
}

func footer(k KeyMap) string {
	var parts []string
	for _, b := range k.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
