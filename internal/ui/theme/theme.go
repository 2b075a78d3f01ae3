// Package theme provides the semantic color palette for autocomplete views.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors used by the autocomplete widgets.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	Primary() lipgloss.AdaptiveColor   // Focused borders, active option marker
	Secondary() lipgloss.AdaptiveColor // Selected label, field names
	Accent() lipgloss.AdaptiveColor    // Searching indicator

	Error() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor

	Text() lipgloss.AdaptiveColor      // Option text, input text
	TextMuted() lipgloss.AdaptiveColor // Placeholders, hints, passive slot

	Highlight() lipgloss.AdaptiveColor // Active option background

	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}

// Palette is a Theme backed by plain color fields.
type Palette struct {
	PrimaryColor       lipgloss.AdaptiveColor
	SecondaryColor     lipgloss.AdaptiveColor
	AccentColor        lipgloss.AdaptiveColor
	ErrorColor         lipgloss.AdaptiveColor
	SuccessColor       lipgloss.AdaptiveColor
	TextColor          lipgloss.AdaptiveColor
	TextMutedColor     lipgloss.AdaptiveColor
	HighlightColor     lipgloss.AdaptiveColor
	BorderNormalColor  lipgloss.AdaptiveColor
	BorderFocusedColor lipgloss.AdaptiveColor
	BorderDimColor     lipgloss.AdaptiveColor
}

func (p Palette) Primary() lipgloss.AdaptiveColor       { return p.PrimaryColor }
func (p Palette) Secondary() lipgloss.AdaptiveColor     { return p.SecondaryColor }
func (p Palette) Accent() lipgloss.AdaptiveColor        { return p.AccentColor }
func (p Palette) Error() lipgloss.AdaptiveColor         { return p.ErrorColor }
func (p Palette) Success() lipgloss.AdaptiveColor       { return p.SuccessColor }
func (p Palette) Text() lipgloss.AdaptiveColor          { return p.TextColor }
func (p Palette) TextMuted() lipgloss.AdaptiveColor     { return p.TextMutedColor }
func (p Palette) Highlight() lipgloss.AdaptiveColor     { return p.HighlightColor }
func (p Palette) BorderNormal() lipgloss.AdaptiveColor  { return p.BorderNormalColor }
func (p Palette) BorderFocused() lipgloss.AdaptiveColor { return p.BorderFocusedColor }
func (p Palette) BorderDim() lipgloss.AdaptiveColor     { return p.BorderDimColor }

func c(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
