package export

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"javakg/internal/graph"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS nodes (
	key   TEXT PRIMARY KEY,
	kind  TEXT NOT NULL,
	name  TEXT NOT NULL,
	attrs TEXT
);
CREATE TABLE IF NOT EXISTS edges (
	source   TEXT NOT NULL,
	target   TEXT NOT NULL,
	relation TEXT NOT NULL,
	PRIMARY KEY (source, target, relation)
);
CREATE TABLE IF NOT EXISTS stats (
	kind  TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT
);
CREATE INDEX IF NOT EXISTS idx_nodes_kind ON nodes(kind);
CREATE INDEX IF NOT EXISTS idx_edges_source ON edges(source);
`

// WriteSQLite exports a snapshot to a SQLite database at the given path.
// Inserts are idempotent, so re-exporting the same snapshot into an existing
// database is safe.
func WriteSQLite(path string, snap *graph.Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, n := range snap.Nodes {
		var attrs []byte
		if n.Attrs != nil {
			if attrs, err = json.Marshal(n.Attrs); err != nil {
				return fmt.Errorf("marshaling attrs for %s: %w", n.Key, err)
			}
		}
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO nodes (key, kind, name, attrs) VALUES (?, ?, ?, ?)`,
			n.Key, string(n.Kind), n.Name, string(attrs),
		); err != nil {
			return fmt.Errorf("inserting node %s: %w", n.Key, err)
		}
	}

	for _, e := range snap.Edges {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO edges (source, target, relation) VALUES (?, ?, ?)`,
			e.Source, e.Target, string(e.Relation),
		); err != nil {
			return fmt.Errorf("inserting edge %s -> %s: %w", e.Source, e.Target, err)
		}
	}

	for kind, count := range snap.Stats {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO stats (kind, count) VALUES (?, ?)`,
			kind, count,
		); err != nil {
			return fmt.Errorf("inserting stat %s: %w", kind, err)
		}
	}

	for key, value := range map[string]string{
		"root_path":    snap.Meta.RootPath,
		"generated_at": snap.Meta.GeneratedAt,
		"duration":     snap.Meta.Duration,
	} {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
			key, value,
		); err != nil {
			return fmt.Errorf("inserting meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}
