package testsupport

import (
	"context"
	"testing"
	"time"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// StoreRow upserts a minimal row for tests using the provided store.
func StoreRow(t testing.TB, store *library.Store, number, version string) *library.Entry {
	t.Helper()

	row := lsetcsv.NewRow(number, version, time.Now())
	entry, err := store.Upsert(context.Background(), row, library.NewImportID())
	if err != nil {
		t.Fatalf("store.Upsert: %v", err)
	}
	return entry
}
