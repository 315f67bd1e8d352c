// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// The catalog is small, read-mostly and shipped with the binary. SQLite
// keeps it in a single file (or fully in memory with ":memory:") with no
// separate server process.
//
// Every catalog kind shares one table. Each row stores one entry as JSON
// together with its kind and its position inside that kind, so adding a
// field to an entry type never needs a schema change.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/careerpath/internal/config"
	"github.com/aanand-mishra/careerpath/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath and creates the
// catalog table if it does not already exist.
func New(cfg *config.Config) (*SQLite, error) {
	return Open(cfg.StoragePath)
}

// Open is New for callers that only have a path.
func Open(path string) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite.Open: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	// One connection: with ":memory:" every extra connection would see its
	// own empty database.
	db.SetMaxOpenConns(1)

	// Schema:
	//   kind     : catalog kind, e.g. "job-roles"
	//   position : order of the entry inside its kind
	//   payload  : the entry encoded as JSON
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS catalog_entries (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			kind     TEXT    NOT NULL,
			position INTEGER NOT NULL,
			payload  TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.Open: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// Seed replaces every catalog row inside one transaction. Either the whole
// new catalog becomes visible or, on error, the old one stays untouched.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Seed(c types.Catalog) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("Seed: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM catalog_entries"); err != nil {
		return fmt.Errorf("Seed: clear: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO catalog_entries (kind, position, payload) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("Seed: prepare: %w", err)
	}
	defer stmt.Close()

	if err := insertAll(stmt, types.KindJobRoles, c.JobRoles); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindCompanies, c.Companies); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindCareerRecommendations, c.CareerRecommendations); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindTechRecommendations, c.TechRecommendations); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindVideos, c.Videos); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindInternships, c.Internships); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if err := insertAll(stmt, types.KindRoadmap, c.Roadmap); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Seed: commit: %w", err)
	}
	return nil
}

func insertAll[T any](stmt *sql.Stmt, kind string, items []T) error {
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s[%d]: %w", kind, i, err)
		}
		if _, err := stmt.Exec(kind, i, string(payload)); err != nil {
			return fmt.Errorf("insert %s[%d]: %w", kind, i, err)
		}
	}
	return nil
}

// list reads every entry of kind in position order.
func list[T any](s *SQLite, kind string) ([]T, error) {
	stmt, err := s.Db.Prepare(
		"SELECT payload FROM catalog_entries WHERE kind = ? ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: prepare: %w", kind, err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: query: %w", kind, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("list %s: scan row: %w", kind, err)
		}

		var item T
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, fmt.Errorf("list %s: decode row: %w", kind, err)
		}
		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: rows iteration: %w", kind, err)
	}
	return out, nil
}

func (s *SQLite) JobRoles() ([]types.JobRole, error) {
	return list[types.JobRole](s, types.KindJobRoles)
}

func (s *SQLite) Companies() ([]types.Company, error) {
	return list[types.Company](s, types.KindCompanies)
}

func (s *SQLite) CareerRecommendations() ([]types.CareerRecommendation, error) {
	return list[types.CareerRecommendation](s, types.KindCareerRecommendations)
}

func (s *SQLite) TechRecommendations() ([]types.TechRecommendation, error) {
	return list[types.TechRecommendation](s, types.KindTechRecommendations)
}

func (s *SQLite) Videos() ([]types.Video, error) {
	return list[types.Video](s, types.KindVideos)
}

func (s *SQLite) Internships() ([]types.Internship, error) {
	return list[types.Internship](s, types.KindInternships)
}

func (s *SQLite) Roadmap() ([]types.RoadmapPhase, error) {
	return list[types.RoadmapPhase](s, types.KindRoadmap)
}
