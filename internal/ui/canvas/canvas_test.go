package canvas

import (
	"strings"
	"testing"
)

func TestComposeWithoutOverlaysReturnsBase(t *testing.T) {
	if got := Compose(10, 2, "base"); got != "base" {
		t.Fatalf("expected base unchanged, got %q", got)
	}
}

func TestCenterOverlay(t *testing.T) {
	out := Compose(11, 3, "", func(c *Canvas) { c.Center("X") })
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least two lines, got %q", out)
	}
	if idx := strings.Index(lines[1], "X"); idx != 5 {
		t.Fatalf("expected X at column 5 of row 1, got %d in %q", idx, lines[1])
	}
}

func TestBottomRightOverlay(t *testing.T) {
	out := Compose(10, 3, "top", func(c *Canvas) { c.BottomRight("ok", 0) })
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "top") {
		t.Fatalf("expected base on first row, got %q", lines[0])
	}
	if len(lines) < 3 {
		t.Fatalf("expected three rows, got %q", out)
	}
	last := lines[2]
	if strings.Index(last, "ok") != 8 {
		t.Fatalf("expected ok in the bottom-right corner, got %q", last)
	}
}

func TestNewClampsDimensions(t *testing.T) {
	c := New(0, -1)
	if c.Width() != 1 || c.Height() != 1 {
		t.Fatalf("expected 1x1, got %dx%d", c.Width(), c.Height())
	}
	_ = c.Render()
}
