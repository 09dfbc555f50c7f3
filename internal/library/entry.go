package library

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lsetwatch/internal/lsetcsv"
)

// Entry is one stored set: the full decoded row plus bookkeeping.
type Entry struct {
	ID        int64
	Row       lsetcsv.Row
	ImportID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const entryColumns = "id, row_json, import_id, created_at, updated_at"

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id         int64
		rowJSON    string
		importID   sql.NullString
		createdRaw sql.NullString
		updatedRaw sql.NullString
	)

	if err := scanner.Scan(&id, &rowJSON, &importID, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	entry := &Entry{ID: id, ImportID: importID.String}
	if err := json.Unmarshal([]byte(rowJSON), &entry.Row); err != nil {
		return nil, fmt.Errorf("unmarshal row for entry %d: %w", id, err)
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		entry.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		entry.UpdatedAt = updated
	}
	return entry, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(time.RFC3339Nano, value)
}

func nullableString(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

func nullableValue(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableEnum(value *lsetcsv.SetStatus) any {
	if value == nil {
		return nil
	}
	return int(*value)
}
