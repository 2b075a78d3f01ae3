package theme

import "testing"

func TestDefaultThemeIsFirstRegistered(t *testing.T) {
	if CurrentName() == "" || Current() == nil {
		t.Fatal("expected a default theme after init")
	}
}

func TestSetTheme(t *testing.T) {
	orig := CurrentName()
	t.Cleanup(func() { SetTheme(orig) })

	if !SetTheme("gruvbox") {
		t.Fatal("expected gruvbox to be registered")
	}
	if CurrentName() != "gruvbox" {
		t.Fatalf("expected gruvbox, got %s", CurrentName())
	}
	if Current().Primary() != Gruvbox.PrimaryColor {
		t.Fatal("expected current theme colors to match gruvbox palette")
	}
	if SetTheme("does-not-exist") {
		t.Fatal("expected unknown theme to be rejected")
	}
	if CurrentName() != "gruvbox" {
		t.Fatal("expected failed SetTheme to leave current theme untouched")
	}
}

func TestAvailableSorted(t *testing.T) {
	names := Available()
	want := []string{"gruvbox", "nord", "tokyonight"}
	if len(names) != len(want) {
		t.Fatalf("expected %d themes, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestCycleThemeWraps(t *testing.T) {
	orig := CurrentName()
	t.Cleanup(func() { SetTheme(orig) })

	SetTheme("tokyonight")
	if got := CycleTheme(); got != "gruvbox" {
		t.Fatalf("expected wrap to gruvbox, got %s", got)
	}
	if got := CycleTheme(); got != "nord" {
		t.Fatalf("expected nord, got %s", got)
	}
}

func TestPaletteFieldsNonEmpty(t *testing.T) {
	for _, name := range Available() {
		SetTheme(name)
		th := Current()
		for label, col := range map[string]string{
			"primary":   th.Primary().Dark,
			"text":      th.Text().Dark,
			"muted":     th.TextMuted().Dark,
			"highlight": th.Highlight().Dark,
			"border":    th.BorderFocused().Dark,
		} {
			if col == "" {
				t.Errorf("theme %s: %s color empty", name, label)
			}
		}
	}
	SetTheme("tokyonight")
}
