package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mattsolo1/grove-datesort/pkg/models"
)

// ErrNotFound is returned when no outline has the requested name.
var ErrNotFound = errors.New("outline not found")

// Record is a stored outline with its YAML content.
type Record struct {
	models.OutlineInfo
	Content []byte
}

// Store keeps named outlines in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the outline database in dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "outlines.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return s, nil
}

func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS outlines (
		name TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		content BLOB NOT NULL,
		node_count INTEGER NOT NULL DEFAULT 0,
		sorted BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_outlines_sorted ON outlines(sorted);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Put inserts or replaces an outline. CreatedAt is kept from an existing
// row; ModifiedAt is set to now.
func (s *Store) Put(r *Record) error {
	if r.Name == "" {
		return errors.New("outline name is required")
	}

	now := time.Now().UTC()
	created := now
	if existing, err := s.Get(r.Name); err == nil {
		created = existing.CreatedAt
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	query := `
	INSERT OR REPLACE INTO outlines (name, title, content, node_count, sorted, created_at, modified_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, r.Name, r.Title, r.Content, r.NodeCount, r.Sorted, created, now); err != nil {
		return fmt.Errorf("store outline %s: %w", r.Name, err)
	}

	r.CreatedAt = created
	r.ModifiedAt = now
	return nil
}

// Get returns the outline called name.
func (s *Store) Get(name string) (*Record, error) {
	query := `
	SELECT name, title, content, node_count, sorted, created_at, modified_at
	FROM outlines WHERE name = ?
	`

	var r Record
	err := s.db.QueryRow(query, name).Scan(
		&r.Name, &r.Title, &r.Content, &r.NodeCount, &r.Sorted, &r.CreatedAt, &r.ModifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("query outline %s: %w", name, err)
	}
	return &r, nil
}

// List returns every stored outline ordered by name.
func (s *Store) List() ([]*models.OutlineInfo, error) {
	query := `
	SELECT name, title, node_count, sorted, created_at, modified_at
	FROM outlines ORDER BY name
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list outlines: %w", err)
	}
	defer rows.Close()

	var infos []*models.OutlineInfo
	for rows.Next() {
		var info models.OutlineInfo
		if err := rows.Scan(&info.Name, &info.Title, &info.NodeCount, &info.Sorted, &info.CreatedAt, &info.ModifiedAt); err != nil {
			return nil, err
		}
		infos = append(infos, &info)
	}
	return infos, rows.Err()
}

// Delete removes the outline called name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM outlines WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete outline %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
