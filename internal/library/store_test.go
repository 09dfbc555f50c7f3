package library_test

import (
	"context"
	"testing"
	"time"

	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
	"lsetwatch/internal/testsupport"
)

func ptr[T any](v T) *T { return &v }

func sampleRow(number string) lsetcsv.Row {
	row := lsetcsv.NewRow(number, "1", time.Unix(1702112924, 0))
	row.MyGroup = ptr("My category")
	row.State = ptr(lsetcsv.StatusOpened)
	row.PurchasePrice = ptr(437.71)
	row.MyTags = []string{"city", "creator"}
	row.Notes = ptr(`note with "quotes" and ; delimiters`)
	return row
}

func TestStoreUpsertAndGet(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	importID := library.NewImportID()
	entry, err := store.Upsert(ctx, sampleRow("3178"), importID)
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if entry == nil {
		t.Fatal("Upsert returned nil entry")
	}
	if entry.ImportID != importID {
		t.Errorf("import ID = %q, want %q", entry.ImportID, importID)
	}

	got, err := store.GetBySet(ctx, "3178", "1")
	if err != nil {
		t.Fatalf("GetBySet returned error: %v", err)
	}
	if got == nil {
		t.Fatal("GetBySet returned nil for a stored set")
	}
	if got.Row.Number != "3178" || got.Row.Version != "1" {
		t.Errorf("stored set = %s-%s, want 3178-1", got.Row.Number, got.Row.Version)
	}
	if got.Row.MyGroup == nil || *got.Row.MyGroup != "My category" {
		t.Errorf("mygroup = %v, want the stored value", got.Row.MyGroup)
	}
	if got.Row.State == nil || *got.Row.State != lsetcsv.StatusOpened {
		t.Errorf("state = %v, want opened", got.Row.State)
	}
	if got.Row.PurchasePrice == nil || *got.Row.PurchasePrice != 437.71 {
		t.Errorf("purc_price = %v, want 437.71", got.Row.PurchasePrice)
	}
	if len(got.Row.MyTags) != 2 {
		t.Errorf("mytags = %v, want two items", got.Row.MyTags)
	}
	if !got.Row.LastEdit.Equal(time.Unix(1702112924, 0)) {
		t.Errorf("last_edit = %v, want the stored instant", got.Row.LastEdit)
	}
}

func TestStoreGetMissingReturnsNil(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	got, err := store.GetBySet(context.Background(), "9999", "1")
	if err != nil {
		t.Fatalf("GetBySet returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("GetBySet = %+v, want nil for an absent set", got)
	}
}

func TestStoreReimportReplaces(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first, err := store.Upsert(ctx, sampleRow("3178"), library.NewImportID())
	if err != nil {
		t.Fatalf("first Upsert returned error: %v", err)
	}

	updated := sampleRow("3178")
	updated.State = ptr(lsetcsv.StatusSold)
	secondImport := library.NewImportID()
	second, err := store.Upsert(ctx, updated, secondImport)
	if err != nil {
		t.Fatalf("second Upsert returned error: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("re-import created a new entry (id %d then %d)", first.ID, second.ID)
	}
	if second.ImportID != secondImport {
		t.Errorf("import ID = %q, want the second run's %q", second.ImportID, secondImport)
	}
	if second.Row.State == nil || *second.Row.State != lsetcsv.StatusSold {
		t.Errorf("state = %v, want sold after re-import", second.Row.State)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("library holds %d entries, want 1", len(entries))
	}
}

func TestStoreListOrdersBySet(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for _, number := range []string{"4531", "1", "3178"} {
		if _, err := store.Upsert(ctx, sampleRow(number), ""); err != nil {
			t.Fatalf("Upsert %s returned error: %v", number, err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	var got []string
	for _, entry := range entries {
		got = append(got, entry.Row.Number)
	}
	want := []string{"1", "3178", "4531"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list order = %v, want %v", got, want)
		}
	}
}

func TestStoreRemoveAndClear(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	testsupport.StoreRow(t, store, "3178", "1")
	testsupport.StoreRow(t, store, "4531", "1")

	removed, err := store.Remove(ctx, "3178", "1")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !removed {
		t.Fatal("Remove reported no entry for a stored set")
	}
	removed, err = store.Remove(ctx, "3178", "1")
	if err != nil {
		t.Fatalf("second Remove returned error: %v", err)
	}
	if removed {
		t.Fatal("Remove reported an entry for an already-removed set")
	}

	cleared, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("Clear removed %d entries, want 1", cleared)
	}
}

func TestStoreStats(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	opened := sampleRow("3178")
	sold := sampleRow("3221")
	sold.State = ptr(lsetcsv.StatusSold)
	unset := sampleRow("4496")
	unset.State = nil
	for _, row := range []lsetcsv.Row{opened, sold, unset} {
		if _, err := store.Upsert(ctx, row, ""); err != nil {
			t.Fatalf("Upsert returned error: %v", err)
		}
	}

	summary, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("total = %d, want 3", summary.Total)
	}
	if summary.ByState[lsetcsv.StatusOpened] != 1 {
		t.Errorf("opened count = %d, want 1", summary.ByState[lsetcsv.StatusOpened])
	}
	if summary.ByState[lsetcsv.StatusSold] != 1 {
		t.Errorf("sold count = %d, want 1", summary.ByState[lsetcsv.StatusSold])
	}
	if summary.ByState[lsetcsv.StatusUnspecified] != 1 {
		t.Errorf("unspecified count = %d, want 1", summary.ByState[lsetcsv.StatusUnspecified])
	}
}

func TestStoreListByImport(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	run := library.NewImportID()
	if _, err := store.Upsert(ctx, sampleRow("3178"), run); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if _, err := store.Upsert(ctx, sampleRow("4531"), library.NewImportID()); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	entries, err := store.ListByImport(ctx, run)
	if err != nil {
		t.Fatalf("ListByImport returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Row.Number != "3178" {
		t.Fatalf("ListByImport = %+v, want only set 3178", entries)
	}
}
