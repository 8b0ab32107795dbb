// Copyright © 2026 Imgrid contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: settings/store.go
// Summary: SQLite-backed persistence for window placements.
//
// Remembers where the host's GUI windows sat between runs. Strictly
// best-effort: a failed save is logged and the frame goes on.

package settings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/imgrid/im"
)

const schema = `
CREATE TABLE IF NOT EXISTS window_settings (
	name       TEXT PRIMARY KEY,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	w          INTEGER NOT NULL,
	h          INTEGER NOT NULL,
	collapsed  INTEGER NOT NULL DEFAULT 0,
	session    TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL
);
`

// Store persists window placements in a single SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath places the database under the XDG data dir.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("settings: resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "imgrid", "windows.db"), nil
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("settings: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("settings: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("settings: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the given placements, tagging them with the saving session.
func (s *Store) Save(session string, placements []im.Placement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("settings: begin save: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO window_settings (name, x, y, w, h, collapsed, session, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			x = excluded.x, y = excluded.y, w = excluded.w, h = excluded.h,
			collapsed = excluded.collapsed, session = excluded.session,
			updated_at = excluded.updated_at`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("settings: prepare save: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range placements {
		collapsed := 0
		if p.Collapsed {
			collapsed = 1
		}
		if _, err := stmt.Exec(p.Name, p.X, p.Y, p.W, p.H, collapsed, session, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("settings: save %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// Load returns every stored placement.
func (s *Store) Load() ([]im.Placement, error) {
	rows, err := s.db.Query(
		`SELECT name, x, y, w, h, collapsed FROM window_settings ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("settings: load: %w", err)
	}
	defer rows.Close()

	var out []im.Placement
	for rows.Next() {
		var p im.Placement
		var collapsed int
		if err := rows.Scan(&p.Name, &p.X, &p.Y, &p.W, &p.H, &collapsed); err != nil {
			return nil, fmt.Errorf("settings: scan placement: %w", err)
		}
		p.Collapsed = collapsed != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}
