// Package canvas composes lipgloss-rendered blocks into a single frame on a
// cell buffer, so overlays (help, toasts) can sit on top of the base view.
package canvas

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is a fixed-size cell frame.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

// New creates a blank canvas. Non-positive dimensions are raised to 1.
func New(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// DrawAt writes block with its top-left corner at x,y, cropping at the edges.
func (c *Canvas) DrawAt(x, y int, block string) {
	lines := splitLines(block)
	if len(lines) == 0 || c == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// Center draws block centered horizontally and vertically.
func (c *Canvas) Center(block string) {
	lines := splitLines(block)
	if len(lines) == 0 || c == nil {
		return
	}
	w := min(maxLineWidth(lines), c.width)
	c.DrawAt((c.width-w)/2, (c.height-len(lines))/2, block)
}

// BottomRight draws block anchored to the bottom-right corner, inset by pad.
func (c *Canvas) BottomRight(block string, pad int) {
	lines := splitLines(block)
	if len(lines) == 0 || c == nil {
		return
	}
	pad = max(pad, 0)
	c.DrawAt(c.width-maxLineWidth(lines)-pad, c.height-len(lines)-pad, block)
}

// Render returns the frame as newline-separated lines and releases the
// buffer. The canvas must not be drawn on afterwards.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

// Compose draws base and then each overlay in order on a width x height
// canvas. Overlays are placed by their own functions.
func Compose(width, height int, base string, overlays ...func(*Canvas)) string {
	if len(overlays) == 0 {
		return base
	}
	c := New(width, height)
	c.DrawAt(0, 0, base)
	for _, draw := range overlays {
		if draw != nil {
			draw(c)
		}
	}
	return c.Render()
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
