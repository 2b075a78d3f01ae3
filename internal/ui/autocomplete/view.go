package autocomplete

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"autocomplete/internal/dom"
	"autocomplete/internal/ui/combobox"
)

// View implements tea.Model: the field (text input while open, passive
// display otherwise) followed by the slotted candidate list.
func (a *Autocomplete) View() string {
	var b strings.Builder
	b.WriteString(a.fieldView())
	if a.ownsList() {
		if list := a.ListView(); list != "" {
			b.WriteString("\n")
			b.WriteString(list)
		}
	}
	return b.String()
}

func (a *Autocomplete) fieldView() string {
	style := styleField(a.focused, a.state)
	// Width is the visual width; the border sits outside lipgloss Width.
	style = style.Width(a.Width - 2)

	if a.state.editing() {
		content := a.input.View()
		if a.state == StateSearching {
			content += styleSearchingHint().Render(" …")
		}
		return style.Render(content)
	}
	return style.Render(a.passiveView())
}

// passiveView is shown while the text field is not rendered: the committed
// label if there is one, otherwise the default slot content.
func (a *Autocomplete) passiveView() string {
	textWidth := a.Width - 4
	if a.value != nil && a.searchText != "" {
		return styleSelectedLabel().Render(ansi.Truncate(a.searchText, textWidth, "…"))
	}
	if slotted := a.defaultSlot.TextContent(); slotted != "" {
		return styleSlotted().Render(wordwrap.String(slotted, textWidth))
	}
	if a.searchText != "" {
		return styleSlotted().Render(ansi.Truncate(a.searchText, textWidth, "…"))
	}
	return stylePlaceholder().Render(ansi.Truncate(a.placeholder(), textWidth, "…"))
}

func (a *Autocomplete) placeholder() string {
	if a.cfg.Placeholder != "" {
		return a.cfg.Placeholder
	}
	return "Select…"
}

// ListView renders the resolved candidate list with the active marker.
// Hosts that reference an external list place this themselves.
func (a *Autocomplete) ListView() string {
	opts, start, end := a.window()
	if len(opts) == 0 {
		return ""
	}
	var active *dom.Element
	if s := a.binder.Session(); s != nil {
		active = s.Active()
	}

	textWidth := a.Width - 4
	var lines []string
	if start > 0 {
		lines = append(lines, styleListHint().Render("  ▲ more above"))
	}
	for _, opt := range opts[start:end] {
		text := ansi.Truncate(optionText(opt), textWidth, "…")
		if opt == active {
			lines = append(lines, styleOptionActive().Render("▸ "+text))
		} else {
			lines = append(lines, styleOption().Render("  "+text))
		}
	}
	if end < len(opts) {
		lines = append(lines, styleListHint().Render("  ▼ more below"))
	}
	return strings.Join(lines, "\n")
}

// window returns the options and the visible range. Without a session the
// list is shown from the top.
func (a *Autocomplete) window() ([]*dom.Element, int, int) {
	if s := a.binder.Session(); s != nil {
		start, end := s.Window()
		return s.Options(), start, end
	}
	opts := combobox.Options(a.list)
	end := len(opts)
	if limit := a.maxVisible(); end > limit {
		end = limit
	}
	return opts, 0, end
}

// OptionAt maps a row of ListView output to the option drawn there, or nil
// for hint rows and rows past the end.
func (a *Autocomplete) OptionAt(row int) *dom.Element {
	opts, start, end := a.window()
	if start > 0 {
		row-- // "more above" line
	}
	idx := start + row
	if row < 0 || idx >= end {
		return nil
	}
	return opts[idx]
}

// ownsList reports whether the list is projected into this widget's slot
// (and is therefore drawn by View).
func (a *Autocomplete) ownsList() bool {
	return a.list != nil && a.cfg.List == "" && a.list.Parent() == a.host
}

func (a *Autocomplete) maxVisible() int {
	if a.MaxVisible <= 0 {
		return 5
	}
	return a.MaxVisible
}

func optionText(opt *dom.Element) string {
	if l, ok := opt.Data("label"); ok && l != "" {
		return l
	}
	return opt.TextContent()
}
