// Package catalog is the match source behind the demo host: a small SQLite
// table of countries and cities, queried read-only and ranked with fuzzy
// matching.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	appErrors "autocomplete/internal/errors"
)

// Kinds of catalog entries.
const (
	KindCountry = "country"
	KindCity    = "city"
)

// ErrNotFound is returned when the database file does not exist.
var ErrNotFound = errors.New("catalog: database not found")

// Store reads entries from a catalog database.
type Store struct {
	path string
	dsn  string
}

// Open returns a store reading path. The file is opened lazily on each query.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "catalog path is empty", nil)
	}
	if _, err := os.Stat(trimmed); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("catalog %s not found", trimmed), ErrNotFound)
		}
		return nil, appErrors.New(appErrors.CodeCatalogFailed, "stat catalog", err)
	}
	return &Store{path: trimmed, dsn: buildReadOnlyDSN(trimmed)}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// buildReadOnlyDSN creates a read-only DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// Entries returns every entry of kind, optionally restricted to children of
// parent, in insertion order.
func (s *Store) Entries(ctx context.Context, kind, parent string) ([]Entry, error) {
	db, err := openDB(ctx, s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogFailed, "open catalog", err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT kind, value, label, text, parent
		FROM entries
		WHERE kind = ? AND (? = '' OR parent = ?)
		ORDER BY rowid
	`, kind, parent, parent)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogFailed, "query entries", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Kind, &e.Value, &e.Label, &e.Text, &e.Parent); err != nil {
			return nil, appErrors.New(appErrors.CodeCatalogFailed, "scan entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeCatalogFailed, "iterate entries", err)
	}
	return entries, nil
}

// Search returns up to limit entries of kind matching query, best match
// first. A non-positive limit means no limit.
func (s *Store) Search(ctx context.Context, kind, parent, query string, limit int) ([]Entry, error) {
	entries, err := s.Entries(ctx, kind, parent)
	if err != nil {
		return nil, err
	}
	ranked := Rank(entries, query)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
