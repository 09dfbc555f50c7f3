package lsetcsv_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"lsetwatch/internal/lsetcsv"
)

const exportHeader = "number;version;marker;color;template;mygroup;state;purc_condition;purc_platform;purc_person;purc_date;purc_number;purc_price;purc_shipc;purc_costs;purc_items;sell_condition;sell_platform;sell_person;sell_date;sell_number;sell_price;sell_shipc;sell_costs;sell_items;vip_points_get;vip_points_sub;cashback;cashback_type;location;addition;completeness;altern_pieces;packaging;instructions;sales_value;to_sell;notes;mytags;documents;reminder_date;last_edit"

// Lines captured from a real Lsetwatch export (en_NZ locale, default date
// format), one per entry template, plus one row exercising the escape codec.
var exportLines = []string{
	exportHeader,
	"3178;1;;;;My category;2;4;TradeMe;seller;;P123456789;10;4.5;;1;;;;;;;;;1;;;;;Lager;no spares;1;100;;4;;;my notes for this set;city;Z:/Downloads/Brickset-MySets-owned.csv|Z:/Downloads/IMG_20160710_103837.jpg;30/12/2023;1702112924",
	"4531;1;;;1;;1;1;Bricklink;Some shop;06/06/2023;;437.71;216.3538;10.82;2;;;;;;;;;1;;;;;;;1;;1;1;;;;;;;1702113145",
	"3221;1;;;3;;10;5;;;;;20;10;;1;4;TradeMe;Somebody;08/12/2023;P123456789;45;9.5;0.5;1;;;;;;;;;;;;;;;;;1702113042",
	"4496;1;;;2;;;;Wunschliste;;;;;;;1;;;;;;;;;1;;;;;;;;;;;;;;;;;1702113074",
	"1;1;;;;category with semicolon \a59;;;;;;;;;;;;;;;;;;;1;;;;;;;;;;;;;note with \a34quote\a34 and diacritic ā;tag with pipe \a124|tag with semicolon \a59;;;1702113511",
}

func readAll(t *testing.T, input string, opts lsetcsv.Options) []lsetcsv.Row {
	t.Helper()
	r, err := lsetcsv.NewReader(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	var rows []lsetcsv.Row
	for r.Next() {
		rows = append(rows, r.Row())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Reader returned error: %v", err)
	}
	return rows
}

func rowByNumber(t *testing.T, rows []lsetcsv.Row, number string) lsetcsv.Row {
	t.Helper()
	for _, row := range rows {
		if row.Number == number {
			return row
		}
	}
	t.Fatalf("no row with number %q", number)
	return lsetcsv.Row{}
}

func ptr[T any](v T) *T { return &v }

func TestReaderReadsAllRows(t *testing.T) {
	rows := readAll(t, strings.Join(exportLines, "\r\n"), lsetcsv.Options{})
	if len(rows) != 5 {
		t.Fatalf("decoded %d rows, want 5", len(rows))
	}
}

func TestReaderFreeTemplateRow(t *testing.T) {
	rows := readAll(t, strings.Join(exportLines, "\r\n"), lsetcsv.Options{})
	got := rowByNumber(t, rows, "3178")

	want := lsetcsv.Row{
		Number:            "3178",
		Version:           "1",
		Template:          lsetcsv.TemplateFreeConfiguration,
		MyGroup:           ptr("My category"),
		State:             ptr(lsetcsv.StatusOpened),
		PurchaseCondition: ptr(lsetcsv.ConditionUsedComplete),
		PurchasePlatform:  ptr("TradeMe"),
		PurchasePerson:    ptr("seller"),
		PurchaseNumber:    ptr("P123456789"),
		PurchasePrice:     ptr(10.0),
		PurchaseShipping:  ptr(4.5),
		PurchaseItems:     1,
		SellItems:         1,
		Location:          ptr("Lager"),
		Addition:          ptr("no spares"),
		Completeness:      lsetcsv.InventoryComplete,
		AlternPieces:      ptr(100),
		Packaging:         lsetcsv.AccessoryNotPresent,
		Instructions:      lsetcsv.AccessoryPresentDamaged,
		Notes:             ptr("my notes for this set"),
		MyTags:            []string{"city"},
		Documents: []string{
			"Z:/Downloads/Brickset-MySets-owned.csv",
			"Z:/Downloads/IMG_20160710_103837.jpg",
		},
		ReminderDate: ptr(time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)),
		LastEdit:     time.Unix(1702112924, 0).UTC(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row = %+v\nwant %+v", got, want)
	}
}

func TestReaderSealedTemplateRow(t *testing.T) {
	rows := readAll(t, strings.Join(exportLines, "\r\n"), lsetcsv.Options{})
	got := rowByNumber(t, rows, "4531")

	want := lsetcsv.Row{
		Number:            "4531",
		Version:           "1",
		Template:          lsetcsv.TemplateSealed,
		State:             ptr(lsetcsv.StatusSealed),
		PurchaseCondition: ptr(lsetcsv.ConditionSealed),
		PurchasePlatform:  ptr("Bricklink"),
		PurchasePerson:    ptr("Some shop"),
		PurchaseDate:      ptr(time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC)),
		PurchasePrice:     ptr(437.71),
		PurchaseShipping:  ptr(216.3538),
		PurchaseCosts:     ptr(10.82),
		PurchaseItems:     2,
		SellItems:         1,
		Completeness:      lsetcsv.InventoryComplete,
		Packaging:         lsetcsv.AccessoryPresentMint,
		Instructions:      lsetcsv.AccessoryPresentMint,
		LastEdit:          time.Unix(1702113145, 0).UTC(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("row = %+v\nwant %+v", got, want)
	}
}

func TestReaderUnescapesFreeTextColumns(t *testing.T) {
	rows := readAll(t, strings.Join(exportLines, "\r\n"), lsetcsv.Options{})
	got := rowByNumber(t, rows, "1")

	if got.MyGroup == nil || *got.MyGroup != "category with semicolon ;" {
		t.Errorf("mygroup = %v, want %q", got.MyGroup, "category with semicolon ;")
	}
	if got.Notes == nil || *got.Notes != `note with "quote" and diacritic ā` {
		t.Errorf("notes = %v, want %q", got.Notes, `note with "quote" and diacritic ā`)
	}
}

// List items keep their escape sequences: the column text is split on the
// pipe as-is, matching what Lsetwatch itself does on import.
func TestReaderLeavesListItemsEscaped(t *testing.T) {
	rows := readAll(t, strings.Join(exportLines, "\r\n"), lsetcsv.Options{})
	got := rowByNumber(t, rows, "1")

	want := []string{"tag with pipe \a124", "tag with semicolon \a59"}
	if !reflect.DeepEqual(got.MyTags, want) {
		t.Errorf("mytags = %q, want %q", got.MyTags, want)
	}
}

func TestReaderLocales(t *testing.T) {
	tests := []struct {
		name string
		line string
		opts lsetcsv.Options
	}{
		{
			name: "en_NZ",
			line: "4531;1;;;1;;1;1;;;06/06/2023;;437.71;1.1;0.9;2;;;;;;;;;1;;;;;;;1;;1;1;;;;;;;1702113145",
			opts: lsetcsv.Options{DateFormat: "%d/%m/%Y", Locale: "en_NZ.utf8"},
		},
		{
			name: "de_DE",
			line: "4531;1;;;1;;1;1;;;06.06.2023;;437,71;1,1;0,9;2;;;;;;;;;1;;;;;;;1;;1;1;;;;;;;1702113145",
			opts: lsetcsv.Options{DateFormat: "%d.%m.%Y", Locale: "de_DE.utf8"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := readAll(t, exportHeader+"\r\n"+tt.line+"\r\n", tt.opts)
			if len(rows) != 1 {
				t.Fatalf("decoded %d rows, want 1", len(rows))
			}
			got := rows[0]
			wantDate := time.Date(2023, 6, 6, 0, 0, 0, 0, time.UTC)
			if got.PurchaseDate == nil || !got.PurchaseDate.Equal(wantDate) {
				t.Errorf("purc_date = %v, want %v", got.PurchaseDate, wantDate)
			}
			if got.PurchasePrice == nil || *got.PurchasePrice != 437.71 {
				t.Errorf("purc_price = %v, want 437.71", got.PurchasePrice)
			}
			if got.PurchaseShipping == nil || *got.PurchaseShipping != 1.1 {
				t.Errorf("purc_shipc = %v, want 1.1", got.PurchaseShipping)
			}
			if got.PurchaseCosts == nil || *got.PurchaseCosts != 0.9 {
				t.Errorf("purc_costs = %v, want 0.9", got.PurchaseCosts)
			}
		})
	}
}

func TestReaderWithoutHeader(t *testing.T) {
	rows := readAll(t, exportLines[1]+"\r\n", lsetcsv.Options{})
	if len(rows) != 1 {
		t.Fatalf("decoded %d rows, want 1", len(rows))
	}
	if rows[0].Number != "3178" {
		t.Errorf("number = %q, want %q", rows[0].Number, "3178")
	}
}

func TestReaderReorderedPartialHeader(t *testing.T) {
	input := "version;number;last_edit\r\n1;3178;1702112924\r\n"
	rows := readAll(t, input, lsetcsv.Options{})
	if len(rows) != 1 {
		t.Fatalf("decoded %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.Number != "3178" || got.Version != "1" {
		t.Errorf("number, version = %q, %q, want %q, %q", got.Number, got.Version, "3178", "1")
	}
	// Omitted columns take their defaults.
	if got.PurchaseItems != 1 || got.SellItems != 1 {
		t.Errorf("item counts = %d, %d, want 1, 1", got.PurchaseItems, got.SellItems)
	}
	if got.Template != lsetcsv.TemplateFreeConfiguration {
		t.Errorf("template = %v, want free-configuration default", got.Template)
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	input := exportHeader + "\r\n\r\n" + exportLines[1] + "\r\n\r\n"
	rows := readAll(t, input, lsetcsv.Options{})
	if len(rows) != 1 {
		t.Fatalf("decoded %d rows, want 1", len(rows))
	}
}

func TestReaderGrammarError(t *testing.T) {
	r, err := lsetcsv.NewReader(strings.NewReader("3178;1;1702112924\r\n"), lsetcsv.Options{})
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	if r.Next() {
		t.Fatal("Next succeeded on a malformed line")
	}
	var gerr *lsetcsv.GrammarError
	if !errors.As(r.Err(), &gerr) {
		t.Fatalf("Err() = %v, want a GrammarError", r.Err())
	}
	if gerr.Line != 1 || gerr.Got != 3 {
		t.Errorf("GrammarError line %d with %d columns, want line 1 with 3 columns", gerr.Line, gerr.Got)
	}
}

func TestReaderCoercionErrors(t *testing.T) {
	width := len(lsetcsv.Header())
	makeLine := func(set map[int]string) string {
		fields := make([]string, width)
		fields[0] = "3178"
		fields[1] = "1"
		fields[width-1] = "1702112924"
		for i, v := range set {
			fields[i] = v
		}
		return strings.Join(fields, ";") + "\r\n"
	}

	tests := []struct {
		name   string
		line   string
		column string
	}{
		{"enum code out of range", makeLine(map[int]string{4: "99"}), "template"},
		{"negative enum code", makeLine(map[int]string{6: "-1"}), "state"},
		{"bad float", makeLine(map[int]string{12: "ten"}), "purc_price"},
		{"comma float under period locale", makeLine(map[int]string{12: "1,1"}), "purc_price"},
		{"date against wrong pattern", makeLine(map[int]string{10: "2023-06-06"}), "purc_date"},
		{"bad boolean", makeLine(map[int]string{36: "yes"}), "to_sell"},
		{"bad timestamp", makeLine(map[int]string{width - 1: "noon"}), "last_edit"},
		{"missing required number", makeLine(map[int]string{0: ""}), "number"},
		{"missing required last_edit", makeLine(map[int]string{width - 1: ""}), "last_edit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := lsetcsv.NewReader(strings.NewReader(tt.line), lsetcsv.Options{})
			if err != nil {
				t.Fatalf("NewReader returned error: %v", err)
			}
			if r.Next() {
				t.Fatal("Next succeeded on a malformed row")
			}
			var cerr *lsetcsv.CoercionError
			if !errors.As(r.Err(), &cerr) {
				t.Fatalf("Err() = %v, want a CoercionError", r.Err())
			}
			if cerr.Column != tt.column {
				t.Errorf("CoercionError column %q, want %q", cerr.Column, tt.column)
			}
			if cerr.Line != 1 {
				t.Errorf("CoercionError line %d, want 1", cerr.Line)
			}
		})
	}
}

func TestReaderStopsAtFirstError(t *testing.T) {
	input := exportHeader + "\r\nbad line\r\n" + exportLines[1] + "\r\n"
	r, err := lsetcsv.NewReader(strings.NewReader(input), lsetcsv.Options{})
	if err != nil {
		t.Fatalf("NewReader returned error: %v", err)
	}
	if r.Next() {
		t.Fatal("Next succeeded past a malformed line")
	}
	if r.Err() == nil {
		t.Fatal("expected error from malformed line")
	}
	if r.Next() {
		t.Fatal("Next succeeded after an error")
	}
}

func TestNewReaderRejectsBadOptions(t *testing.T) {
	if _, err := lsetcsv.NewReader(strings.NewReader(""), lsetcsv.Options{Locale: "not a locale"}); err == nil {
		t.Fatal("expected error for malformed locale")
	}
	if _, err := lsetcsv.NewReader(strings.NewReader(""), lsetcsv.Options{DateFormat: "%j"}); err == nil {
		t.Fatal("expected error for unsupported date format")
	}
}
