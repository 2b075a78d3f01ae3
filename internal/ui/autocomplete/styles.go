package autocomplete

import (
	"github.com/charmbracelet/lipgloss"

	"autocomplete/internal/ui/theme"
)

func styleField(focused bool, state State) lipgloss.Style {
	border := theme.Current().BorderDim()
	switch {
	case state == StateSearching:
		border = theme.Current().Accent()
	case state.editing():
		border = theme.Current().BorderFocused()
	case focused:
		border = theme.Current().BorderNormal()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleSelectedLabel() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

func styleSlotted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text())
}

func stylePlaceholder() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted()).
		Italic(true)
}

func styleSearchingHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent())
}

func styleOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		PaddingLeft(1)
}

func styleOptionActive() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary()).
		Background(theme.Current().Highlight()).
		Bold(true).
		PaddingLeft(1)
}

func styleListHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}
