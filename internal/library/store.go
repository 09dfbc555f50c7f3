package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lsetwatch/internal/config"
	"lsetwatch/internal/lsetcsv"
)

// Store manages library persistence backed by SQLite. A file lock next to
// the database keeps concurrent lsetwatch invocations from interleaving
// writes; the lock is held for the lifetime of the Store.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the library database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.DatabasePath
	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another lsetwatch process holds the library lock")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the library lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// NewImportID returns the identifier recorded against every entry of one
// import run.
func NewImportID() string {
	return uuid.NewString()
}

// Upsert stores row, replacing any existing entry with the same set number
// and version. The import ID records which run the entry came from.
func (s *Store) Upsert(ctx context.Context, row lsetcsv.Row, importID string) (*Entry, error) {
	rowJSON, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("marshal row: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO sets (
            set_number, set_version, template, state, mygroup, purc_price,
            row_json, import_id, last_edit, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (set_number, set_version) DO UPDATE SET
            template = excluded.template, state = excluded.state,
            mygroup = excluded.mygroup, purc_price = excluded.purc_price,
            row_json = excluded.row_json, import_id = excluded.import_id,
            last_edit = excluded.last_edit, updated_at = excluded.updated_at`,
		row.Number,
		row.Version,
		int(row.Template),
		nullableEnum(row.State),
		nullableString(row.MyGroup),
		nullableFloat(row.PurchasePrice),
		string(rowJSON),
		nullableValue(importID),
		row.LastEdit.UTC().Format(time.RFC3339Nano),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert set %s-%s: %w", row.Number, row.Version, err)
	}

	return s.GetBySet(ctx, row.Number, row.Version)
}

// GetBySet fetches the entry for a set number and version, or nil when the
// library holds no such set.
func (s *Store) GetBySet(ctx context.Context, number, version string) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+entryColumns+` FROM sets WHERE set_number = ? AND set_version = ?`,
		number,
		version,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	return entry, nil
}

// List returns every entry ordered by set number and version.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	return s.list(ctx, `SELECT `+entryColumns+` FROM sets ORDER BY set_number, set_version`)
}

// ListByImport returns the entries recorded by one import run.
func (s *Store) ListByImport(ctx context.Context, importID string) ([]*Entry, error) {
	return s.list(ctx, `SELECT `+entryColumns+` FROM sets WHERE import_id = ? ORDER BY set_number, set_version`, importID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes the entry for a set number and version, reporting whether
// one existed.
func (s *Store) Remove(ctx context.Context, number, version string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sets WHERE set_number = ? AND set_version = ?`, number, version)
	if err != nil {
		return false, fmt.Errorf("remove set: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Clear removes every entry and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sets`)
	if err != nil {
		return 0, fmt.Errorf("clear library: %w", err)
	}
	return res.RowsAffected()
}

// Summary aggregates library contents for diagnostic output.
type Summary struct {
	Total   int
	ByState map[lsetcsv.SetStatus]int
}

// Stats counts entries grouped by state. Entries whose state column is NULL
// count under the unspecified status.
func (s *Store) Stats(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state, COUNT(1) FROM sets GROUP BY state`)
	if err != nil {
		return Summary{}, fmt.Errorf("library stats: %w", err)
	}
	defer rows.Close()

	summary := Summary{ByState: make(map[lsetcsv.SetStatus]int)}
	for rows.Next() {
		var state sql.NullInt64
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return Summary{}, err
		}
		status := lsetcsv.StatusUnspecified
		if state.Valid {
			status = lsetcsv.SetStatus(state.Int64)
		}
		summary.ByState[status] += count
		summary.Total += count
	}
	return summary, rows.Err()
}
