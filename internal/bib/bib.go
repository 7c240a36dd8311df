// Package bib implements engine.Bibliography, the citation store behind
// make_bib (spec.md §4.7, §6 "Bibliography"), backed by a SQLite database
// at the path configured by config.BibliographyConfig.DatabasePath.
// Grounded on the teacher's internal/store package (store.ToolStore in
// particular), adapted from mattn/go-sqlite3 to the pure-Go
// modernc.org/sqlite driver already used elsewhere in this module.
package bib

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/eisenwave/cowel-sub001/internal/engine"
	"github.com/eisenwave/cowel-sub001/internal/logging"
)

// Store is a SQLite-backed engine.Bibliography.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// Open creates the database directory if needed and returns a Store
// backed by the SQLite file at dbPath, creating its schema on first use.
func Open(dbPath string) (*Store, error) {
	logging.Get(logging.CategoryBib).Debug("opening bibliography store at %s", dbPath)

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create bibliography directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bibliography database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bibliography schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		date       TEXT,
		publisher  TEXT,
		link       TEXT,
		long_link  TEXT,
		issue_link TEXT,
		author     TEXT
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Find looks up a citation by its ID (engine.Bibliography).
func (s *Store) Find(id string) (engine.DocumentInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var info engine.DocumentInfo
	row := s.db.QueryRow(`
		SELECT id, title, date, publisher, link, long_link, issue_link, author
		FROM documents WHERE id = ?`, id)
	err := row.Scan(&info.ID, &info.Title, &info.Date, &info.Publisher,
		&info.Link, &info.LongLink, &info.IssueLink, &info.Author)
	if err != nil {
		return engine.DocumentInfo{}, false
	}
	return info, true
}

// Insert adds a citation, reporting whether it was newly added rather
// than already present (engine.Bibliography).
func (s *Store) Insert(info engine.DocumentInfo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		INSERT OR IGNORE INTO documents
		(id, title, date, publisher, link, long_link, issue_link, author)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Title, info.Date, info.Publisher,
		info.Link, info.LongLink, info.IssueLink, info.Author,
	)
	if err != nil {
		logging.Get(logging.CategoryBib).Error("failed to insert document %s: %v", info.ID, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// List returns every stored citation, ordered by ID, for `cowel bib
// list`.
func (s *Store) List() ([]engine.DocumentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, title, date, publisher, link, long_link, issue_link, author
		FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bibliography: %w", err)
	}
	defer rows.Close()

	var out []engine.DocumentInfo
	for rows.Next() {
		var info engine.DocumentInfo
		if err := rows.Scan(&info.ID, &info.Title, &info.Date, &info.Publisher,
			&info.Link, &info.LongLink, &info.IssueLink, &info.Author); err != nil {
			return nil, fmt.Errorf("failed to scan bibliography row: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a citation by ID, reporting whether a row was
// actually removed, for `cowel bib remove`.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		logging.Get(logging.CategoryBib).Error("failed to delete document %s: %v", id, err)
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
