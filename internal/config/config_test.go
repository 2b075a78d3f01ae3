package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitializeLoadsDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetInt(KeyDebounceMs); got != DefaultDebounceMs {
		t.Fatalf("expected default %s %d, got %d", KeyDebounceMs, DefaultDebounceMs, got)
	}
	if got := GetInt(KeyMinLength); got != DefaultMinLength {
		t.Fatalf("expected default %s %d, got %d", KeyMinLength, DefaultMinLength, got)
	}
	if GetBool(KeyClearListOnSelect) {
		t.Fatalf("expected default %s to be false", KeyClearListOnSelect)
	}
	if got := Debounce(); got != 300*time.Millisecond {
		t.Fatalf("expected 300ms debounce, got %s", got)
	}
	if got := GetInt(KeyCatalogLimit); got != DefaultCatalogLimit {
		t.Fatalf("expected catalog limit %d, got %d", DefaultCatalogLimit, got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".autocomplete"))
	writeFile(t, filepath.Join(projectDir, ".autocomplete", "config.yaml"), `
min-length: 2
catalog:
  path: /project/catalog.db
`)

	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
min-length: 5
clear-list-on-select: true
catalog:
  path: /user/catalog.db
`)

	if err := Initialize(WithWorkingDir(projectDir), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetInt(KeyMinLength); got != 2 {
		t.Fatalf("expected project min-length 2, got %d", got)
	}
	if got := GetString(KeyCatalogPath); got != "/project/catalog.db" {
		t.Fatalf("expected project catalog path, got %q", got)
	}
	if !GetBool(KeyClearListOnSelect) {
		t.Fatal("expected user clear-list-on-select to survive merge")
	}
}

func TestEnvironmentAndOverridesPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Setenv("AC_MIN_LENGTH", "4")
	t.Setenv("AC_DEBOUNCE_MS", "50")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetInt(KeyMinLength); got != 4 {
		t.Fatalf("expected env min-length 4, got %d", got)
	}
	if got := Debounce(); got != 50*time.Millisecond {
		t.Fatalf("expected env debounce 50ms, got %s", got)
	}

	if err := ApplyOverrides(map[string]any{KeyMinLength: 1}); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if got := GetInt(KeyMinLength); got != 1 {
		t.Fatalf("expected override min-length 1, got %d", got)
	}
}

func TestLegacyDebounceDuration(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "debounce: 250ms\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetInt(KeyDebounceMs); got != 250 {
		t.Fatalf("expected legacy debounce mapped to 250, got %d", got)
	}
}

func TestLegacyDebounceIgnoredWhenExplicit(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "debounce: 250ms\ndebounce-ms: 10\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if got := GetInt(KeyDebounceMs); got != 10 {
		t.Fatalf("expected explicit debounce-ms 10, got %d", got)
	}
}

func TestNegativeDebounceClamps(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "user.yaml"))); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if err := Set(KeyDebounceMs, -5); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := Debounce(); got != 0 {
		t.Fatalf("expected clamp to 0, got %s", got)
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Chdir(tmp)
	userCfg := filepath.Join(tmp, "home", ".autocomplete", "config.yaml")
	userConfigPathOverride = userCfg

	if err := SaveTheme("dracula"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
	data, err := os.ReadFile(userCfg)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	if string(data) == "" {
		t.Fatal("expected saved config to be non-empty")
	}
}

func TestInvalidConfigFileFails(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "min-length: [unterminated\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err == nil {
		t.Fatal("expected parse error for invalid yaml")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
