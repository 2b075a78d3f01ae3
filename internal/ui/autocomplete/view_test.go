package autocomplete

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"autocomplete/internal/dom"
)

func TestViewClosedShowsPlaceholder(t *testing.T) {
	host, _ := fixture(map[string]string{"placeholder": "Pick a country"})
	h := newHarness(t, host)
	if !strings.Contains(h.a.View(), "Pick a country") {
		t.Fatalf("expected placeholder in view:\n%s", h.a.View())
	}
}

func TestViewClosedShowsSlottedContent(t *testing.T) {
	host, _ := fixture(nil)
	host.AppendChild(dom.NewElement("span").SetText("Choose…"))
	h := newHarness(t, host)
	if !strings.Contains(h.a.View(), "Choose…") {
		t.Fatalf("expected slotted content in view:\n%s", h.a.View())
	}
}

func TestViewSelectedShowsLabel(t *testing.T) {
	li := dom.NewOption("us", "United States", "US")
	host, _ := fixture(nil, li)
	h := newHarness(t, host)
	h.settle(h.a.Select(li))
	if !strings.Contains(h.a.View(), "United States") {
		t.Fatalf("expected label in view:\n%s", h.a.View())
	}
}

func TestViewTruncatesLongLabel(t *testing.T) {
	li := dom.NewOption("x", strings.Repeat("long ", 20), "X")
	host, _ := fixture(nil, li)
	h := newHarness(t, host)
	h.a.SetWidth(20)
	h.settle(h.a.Select(li))
	if !strings.Contains(h.a.View(), "…") {
		t.Fatalf("expected truncation marker:\n%s", h.a.View())
	}
}

func TestViewListScrollHints(t *testing.T) {
	var opts []*dom.Element
	for i := range 8 {
		opts = append(opts, dom.NewOption(fmt.Sprint(i), "", fmt.Sprintf("Option %d", i)))
	}
	host, _ := fixture(map[string]string{"open": ""}, opts...)
	h := newHarness(t, host)

	view := h.a.ListView()
	if strings.Contains(view, "more above") || !strings.Contains(view, "more below") {
		t.Fatalf("expected only a below hint at the top:\n%s", view)
	}
	if strings.Contains(view, "Option 5") {
		t.Fatalf("expected window of five options:\n%s", view)
	}

	for range 8 {
		h.key(tea.KeyDown)
	}
	view = h.a.ListView()
	if !strings.Contains(view, "more above") || strings.Contains(view, "more below") {
		t.Fatalf("expected only an above hint at the bottom:\n%s", view)
	}
	if !strings.Contains(view, "▸ Option 7") {
		t.Fatalf("expected active marker on Option 7:\n%s", view)
	}
}

func TestViewSkipsDisabledOptions(t *testing.T) {
	disabled := dom.NewOption("b", "", "Blocked").SetAttr("aria-disabled", "true")
	host, _ := fixture(map[string]string{"open": ""}, dom.NewOption("a", "", "Allowed"), disabled)
	h := newHarness(t, host)
	view := h.a.View()
	if !strings.Contains(view, "Allowed") || strings.Contains(view, "Blocked") {
		t.Fatalf("unexpected list rendering:\n%s", view)
	}
}

func TestViewSearchingHint(t *testing.T) {
	host, _ := fixture(map[string]string{"open": "", "debounce": "0"})
	h := newHarness(t, host)
	h.typeText("abc")
	if !strings.Contains(h.a.View(), "…") {
		t.Fatalf("expected searching hint:\n%s", h.a.View())
	}
}

func TestStates(t *testing.T) {
	tests := []struct {
		state State
		want  []string
	}{
		{StateClosed, nil},
		{StateOpen, []string{PseudoOpen}},
		{StateSearching, []string{PseudoOpen, PseudoSearching}},
		{StateSelected, []string{PseudoSelected}},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got := tt.state.pseudoStates()
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
