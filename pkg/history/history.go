package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"
)

const selectEntryColumns = `SELECT
		id,
		content,
		content_type,
		created_at,
		char_count
	FROM clipboard_history
	`

// Store owns the persisted clipboard history table. All methods are
// synchronous; Insert is a read-then-write sequence with no internal
// serialization, so concurrent writers must be serialized by the caller
// (the watch loop is a single writer).
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at dbPath and
// ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// NewStore wraps an already-open database handle. Init must be called before
// first use.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init ensures the history table and its descending-time index exist. It is
// idempotent and safe to run on every startup.
func (s *Store) Init() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS clipboard_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			content_type TEXT DEFAULT 'text',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			char_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clipboard_created_at ON clipboard_history(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a new entry and returns its id. It returns ok=false with no
// error when the content is empty or whitespace-only, or when it exactly
// matches the content of the current most-recent entry. The dedup check looks
// at the single most-recent row only, so identical content may reappear
// non-consecutively.
func (s *Store) Insert(content, contentType string) (int64, bool, error) {
	if strings.TrimSpace(content) == "" {
		return 0, false, nil
	}
	if contentType == "" {
		contentType = DefaultContentType
	}

	var last string
	err := s.db.QueryRow(
		`SELECT content FROM clipboard_history ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("failed to query most recent entry: %w", err)
	}
	if err == nil && last == content {
		return 0, false, nil
	}

	charCount := utf8.RuneCountInString(content)

	res, err := s.db.Exec(
		`INSERT INTO clipboard_history (content, content_type, char_count) VALUES (?, ?, ?)`,
		content, contentType, charCount,
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return id, true, nil
}

// Fetch returns up to limit entries, most recent first, with previews
// computed on read.
func (s *Store) Fetch(limit int) ([]Entry, error) {
	query := selectEntryColumns + `ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose content contains query as a case-sensitive
// substring, most recent first. Matching uses instr rather than LIKE: LIKE
// is case-insensitive for ASCII by default, and instr has no wildcard syntax
// so %/_ in the query match literally.
func (s *Store) Search(query string, limit int) ([]Entry, error) {
	q := selectEntryColumns + `WHERE instr(content, ?) > 0 ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := s.db.Query(q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get returns the entry with the given id, or nil if it does not exist.
func (s *Store) Get(id int64) (*Entry, error) {
	query := selectEntryColumns + `WHERE id = ?`

	var e Entry
	err := s.db.QueryRow(query, id).Scan(&e.ID, &e.Content, &e.ContentType, &e.CreatedAt, &e.CharCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	e.Preview = Preview(e.Content, PreviewMaxLen)
	return &e, nil
}

// Delete removes the entry with the given id. Deleting an id that does not
// exist is not an error.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM clipboard_history WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM clipboard_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Trim deletes all but the maxEntries most recent entries and returns the
// number removed. Calling it with maxEntries at or above the current row
// count removes nothing.
func (s *Store) Trim(maxEntries int) (int64, error) {
	res, err := s.db.Exec(
		`DELETE FROM clipboard_history WHERE id NOT IN (
			SELECT id FROM clipboard_history ORDER BY created_at DESC, id DESC LIMIT ?
		)`,
		maxEntries,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to trim history: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count trimmed rows: %w", err)
	}

	return removed, nil
}

// Count returns the current number of entries.
func (s *Store) Count() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM clipboard_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Content, &e.ContentType, &e.CreatedAt, &e.CharCount); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Preview = Preview(e.Content, PreviewMaxLen)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

// DefaultDBPath returns the default history database location under the user
// cache directory.
func DefaultDBPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "cliphist", "history.db")
}
