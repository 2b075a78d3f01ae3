package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"

	"autocomplete/internal/ui/combobox"
)

// helpMarkdown documents the demo. Key rows are generated from the bindings.
func helpMarkdown(global KeyMap, nav combobox.KeyMap) string {
	var b strings.Builder
	b.WriteString("# Autocomplete demo\n\n")
	b.WriteString("Start typing in a field. After the debounce window the host ")
	b.WriteString("queries the catalog and fills the option list. Pick an option ")
	b.WriteString("with the arrow keys and Enter, or click it.\n\n")
	b.WriteString("The **city** field reads its options from a list the host renders ")
	b.WriteString("outside the field, filtered by the committed country.\n\n")
	b.WriteString("## Field\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	b.WriteString("| `enter` / `space` / `↓` | open the field |\n")
	b.WriteString("| `esc` | close, keeping the committed value |\n")
	writeBindings(&b, nav.Next, nav.Prev, nav.Commit, nav.Insert)
	b.WriteString("\n## Form\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	writeBindings(&b, global.ShortHelp()...)
	return b.String()
}

func writeBindings(b *strings.Builder, bindings ...key.Binding) {
	for _, kb := range bindings {
		h := kb.Help()
		b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
	}
}

// buildMarkdownRenderer returns a glamour renderer for format (dark, light,
// plain). Plain or unusable formats fall back to the raw markdown.
func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string { return input }
	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
