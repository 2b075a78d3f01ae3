package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	appErrors "autocomplete/internal/errors"
)

const schema = `
	CREATE TABLE IF NOT EXISTS entries (
		kind TEXT NOT NULL,
		value TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		parent TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (kind, value)
	);
`

// Create writes entries into a new or existing database at path.
func Create(ctx context.Context, path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, "create catalog dir", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, "open catalog for writing", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, "create schema", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, "begin seed", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO entries (kind, value, label, text, parent)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		_ = tx.Rollback()
		return appErrors.New(appErrors.CodeCatalogFailed, "prepare seed", err)
	}
	defer func() {
		_ = stmt.Close()
	}()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Kind, e.Value, e.Label, e.Text, e.Parent); err != nil {
			_ = tx.Rollback()
			return appErrors.New(appErrors.CodeCatalogFailed, fmt.Sprintf("insert %s %q", e.Kind, e.Value), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return appErrors.New(appErrors.CodeCatalogFailed, "commit seed", err)
	}
	return nil
}

// Seed writes the built-in entries to dir/catalog.db and opens it.
func Seed(ctx context.Context, dir string) (*Store, error) {
	path := filepath.Join(dir, "catalog.db")
	if err := Create(ctx, path, Builtin()); err != nil {
		return nil, err
	}
	return Open(path)
}

// Builtin returns the demo data set.
func Builtin() []Entry {
	countries := []Entry{
		{Value: "ar", Text: "Argentina"},
		{Value: "au", Text: "Australia"},
		{Value: "br", Text: "Brazil"},
		{Value: "ca", Text: "Canada"},
		{Value: "de", Text: "Germany"},
		{Value: "es", Text: "Spain"},
		{Value: "fr", Text: "France"},
		{Value: "gb", Label: "United Kingdom", Text: "UK"},
		{Value: "in", Text: "India"},
		{Value: "it", Text: "Italy"},
		{Value: "jp", Text: "Japan"},
		{Value: "mx", Text: "Mexico"},
		{Value: "nl", Text: "Netherlands"},
		{Value: "nz", Label: "New Zealand", Text: "NZ"},
		{Value: "pt", Text: "Portugal"},
		{Value: "us", Label: "United States", Text: "USA"},
	}
	cities := []Entry{
		{Value: "buenos-aires", Text: "Buenos Aires", Parent: "ar"},
		{Value: "sydney", Text: "Sydney", Parent: "au"},
		{Value: "melbourne", Text: "Melbourne", Parent: "au"},
		{Value: "sao-paulo", Text: "São Paulo", Parent: "br"},
		{Value: "toronto", Text: "Toronto", Parent: "ca"},
		{Value: "vancouver", Text: "Vancouver", Parent: "ca"},
		{Value: "berlin", Text: "Berlin", Parent: "de"},
		{Value: "munich", Text: "Munich", Parent: "de"},
		{Value: "madrid", Text: "Madrid", Parent: "es"},
		{Value: "barcelona", Text: "Barcelona", Parent: "es"},
		{Value: "paris", Text: "Paris", Parent: "fr"},
		{Value: "lyon", Text: "Lyon", Parent: "fr"},
		{Value: "london", Text: "London", Parent: "gb"},
		{Value: "manchester", Text: "Manchester", Parent: "gb"},
		{Value: "mumbai", Text: "Mumbai", Parent: "in"},
		{Value: "rome", Text: "Rome", Parent: "it"},
		{Value: "milan", Text: "Milan", Parent: "it"},
		{Value: "tokyo", Text: "Tokyo", Parent: "jp"},
		{Value: "osaka", Text: "Osaka", Parent: "jp"},
		{Value: "mexico-city", Text: "Mexico City", Parent: "mx"},
		{Value: "amsterdam", Text: "Amsterdam", Parent: "nl"},
		{Value: "auckland", Text: "Auckland", Parent: "nz"},
		{Value: "lisbon", Text: "Lisbon", Parent: "pt"},
		{Value: "porto", Text: "Porto", Parent: "pt"},
		{Value: "new-york", Label: "New York City", Text: "New York", Parent: "us"},
		{Value: "san-francisco", Text: "San Francisco", Parent: "us"},
		{Value: "chicago", Text: "Chicago", Parent: "us"},
	}
	out := make([]Entry, 0, len(countries)+len(cities))
	for _, c := range countries {
		c.Kind = KindCountry
		out = append(out, c)
	}
	for _, c := range cities {
		c.Kind = KindCity
		out = append(out, c)
	}
	return out
}
