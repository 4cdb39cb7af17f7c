package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/larder/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/larder/internal/core/domain"
	"github.com/custodia-labs/larder/internal/core/ports/driven"
)

// dbFile is the database file name inside the data directory.
const dbFile = "history.db"

// likeEscaper escapes LIKE wildcards in user-supplied filter text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Store owns the SQLite connection and hands out store interfaces over it.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.larder/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".larder", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// HistoryStore returns a HistoryStore interface backed by this store.
func (s *Store) HistoryStore() driven.HistoryStore {
	return &historyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_history.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save stores or replaces an entry.
func (s *historyStore) Save(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry == nil || entry.ID == "" {
		return domain.ErrInvalidInput
	}

	resultJSON, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO history (id, input, result, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			input = excluded.input,
			result = excluded.result,
			created_at = excluded.created_at
	`, entry.ID, entry.Input, string(resultJSON), entry.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, input, result, created_at FROM history WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// List returns entries newest first.
func (s *historyStore) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	limit := -1
	if filter.Limit > 0 {
		limit = filter.Limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, input, result, created_at FROM history
		WHERE ? = '' OR input LIKE '%' || ? || '%' ESCAPE '\'
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, filter.Contains, likeEscaper.Replace(filter.Contains), limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}

// Clear removes all entries.
func (s *historyStore) Clear(ctx context.Context) (int, error) {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared rows: %w", err)
	}
	return int(n), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry scans a single history row.
func scanEntry(row scanner) (*domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	var resultJSON string
	var createdAt int64

	if err := row.Scan(&entry.ID, &entry.Input, &resultJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &entry.Result); err != nil {
		return nil, fmt.Errorf("unmarshaling result: %w", err)
	}
	entry.Result.Input = entry.Input
	entry.CreatedAt = time.Unix(0, createdAt).UTC()

	return &entry, nil
}
