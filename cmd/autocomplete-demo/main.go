package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"autocomplete/internal/catalog"
	"autocomplete/internal/config"
	"autocomplete/internal/debug"
	"autocomplete/internal/ui/autocomplete"
	"autocomplete/internal/ui/theme"
)

const seedTimeout = 5 * time.Second

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.autocomplete/debug.log")
	debounceFlag := flag.Int("debounce", config.GetInt(config.KeyDebounceMs), "Debounce window in milliseconds (0 searches on every keystroke)")
	minLengthFlag := flag.Int("min-length", config.GetInt(config.KeyMinLength), "Minimum query length before a search is requested")
	catalogFlag := flag.String("catalog", config.GetString(config.KeyCatalogPath), "Path to a catalog database (a temporary one is seeded when empty)")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	if err := config.ApplyOverrides(computeOverrides(runtimeFlags{
		debounceMs: debounceFlag,
		minLength:  minLengthFlag,
		catalog:    catalogFlag,
	}, visited)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	theme.SetTheme(config.GetString(config.KeyTheme))

	store, cleanup, err := openCatalog(config.GetString(config.KeyCatalogPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	app := newApp(appConfig{
		Store:      store,
		Limit:      config.GetInt(config.KeyCatalogLimit),
		Defaults:   autocomplete.SettingsConfig(),
		HelpFormat: config.GetString(config.KeyHelpFormat),
	})
	defer app.Close()

	prog := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runtimeFlags struct {
	debounceMs *int
	minLength  *int
	catalog    *string
}

// computeOverrides returns config overrides for flags the user set.
func computeOverrides(flags runtimeFlags, visited map[string]struct{}) map[string]any {
	overrides := map[string]any{}
	if flagWasExplicitlySet("debounce", visited) && flags.debounceMs != nil {
		overrides[config.KeyDebounceMs] = max(*flags.debounceMs, 0)
	}
	if flagWasExplicitlySet("min-length", visited) && flags.minLength != nil {
		overrides[config.KeyMinLength] = max(*flags.minLength, 0)
	}
	if flagWasExplicitlySet("catalog", visited) && flags.catalog != nil {
		overrides[config.KeyCatalogPath] = strings.TrimSpace(*flags.catalog)
	}
	return overrides
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	_, ok := visited[name]
	return ok
}

// openCatalog opens path, or seeds a temporary catalog when path is empty.
// The cleanup function removes anything that was created.
func openCatalog(path string) (*catalog.Store, func(), error) {
	if strings.TrimSpace(path) != "" {
		store, err := catalog.Open(path)
		return store, func() {}, err
	}
	dir, err := os.MkdirTemp("", "autocomplete-catalog-")
	if err != nil {
		return nil, func() {}, fmt.Errorf("create catalog dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	store, err := catalog.Seed(ctx, dir)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	debug.Logf("seeded catalog at %s", store.Path())
	return store, cleanup, nil
}
