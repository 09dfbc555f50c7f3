package lsetcsv

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// column describes one position of the export format: its header name, its
// decode and encode coercions, and whether an empty raw value is acceptable.
// decode is never called with empty raw text; for optional columns an empty
// column simply leaves the row's default in place, and for required columns
// the caller reports the absence as an error.
type column struct {
	name     string
	required bool
	decode   func(c *coder, raw string, row *Row) error
	encode   func(c *coder, row *Row) string
}

// columns is the canonical schema: every column of the format, in the fixed
// order shared by the header, the Reader (absent an input header) and the
// Writer. Built once; consulted read-only by any number of instances.
var columns = []column{
	requiredStringCol("number", func(r *Row) *string { return &r.Number }),
	requiredStringCol("version", func(r *Row) *string { return &r.Version }),
	intCol("marker", func(r *Row) *int { return &r.Marker }),
	plainStringCol("color", func(r *Row) **string { return &r.Color }),
	enumCol("template", func(r *Row) *Template { return &r.Template }),
	escapedStringCol("mygroup", func(r *Row) **string { return &r.MyGroup }),
	optionalEnumCol("state", func(r *Row) **SetStatus { return &r.State }),
	optionalEnumCol("purc_condition", func(r *Row) **Condition { return &r.PurchaseCondition }),
	plainStringCol("purc_platform", func(r *Row) **string { return &r.PurchasePlatform }),
	plainStringCol("purc_person", func(r *Row) **string { return &r.PurchasePerson }),
	dateCol("purc_date", func(r *Row) **time.Time { return &r.PurchaseDate }),
	plainStringCol("purc_number", func(r *Row) **string { return &r.PurchaseNumber }),
	floatCol("purc_price", func(r *Row) **float64 { return &r.PurchasePrice }),
	floatCol("purc_shipc", func(r *Row) **float64 { return &r.PurchaseShipping }),
	floatCol("purc_costs", func(r *Row) **float64 { return &r.PurchaseCosts }),
	intCol("purc_items", func(r *Row) *int { return &r.PurchaseItems }),
	optionalEnumCol("sell_condition", func(r *Row) **Condition { return &r.SellCondition }),
	plainStringCol("sell_platform", func(r *Row) **string { return &r.SellPlatform }),
	plainStringCol("sell_person", func(r *Row) **string { return &r.SellPerson }),
	dateCol("sell_date", func(r *Row) **time.Time { return &r.SellDate }),
	plainStringCol("sell_number", func(r *Row) **string { return &r.SellNumber }),
	floatCol("sell_price", func(r *Row) **float64 { return &r.SellPrice }),
	floatCol("sell_shipc", func(r *Row) **float64 { return &r.SellShipping }),
	floatCol("sell_costs", func(r *Row) **float64 { return &r.SellCosts }),
	intCol("sell_items", func(r *Row) *int { return &r.SellItems }),
	floatCol("vip_points_get", func(r *Row) **float64 { return &r.VIPPointsEarned }),
	floatCol("vip_points_sub", func(r *Row) **float64 { return &r.VIPPointsRedeemed }),
	floatCol("cashback", func(r *Row) **float64 { return &r.Cashback }),
	optionalEnumCol("cashback_type", func(r *Row) **CashbackType { return &r.CashbackType }),
	escapedStringCol("location", func(r *Row) **string { return &r.Location }),
	escapedStringCol("addition", func(r *Row) **string { return &r.Addition }),
	enumCol("completeness", func(r *Row) *InventoryStatus { return &r.Completeness }),
	optionalIntCol("altern_pieces", func(r *Row) **int { return &r.AlternPieces }),
	enumCol("packaging", func(r *Row) *AccessoryStatus { return &r.Packaging }),
	enumCol("instructions", func(r *Row) *AccessoryStatus { return &r.Instructions }),
	floatCol("sales_value", func(r *Row) **float64 { return &r.SalesValue }),
	boolCol("to_sell", func(r *Row) **bool { return &r.ToSell }),
	escapedStringCol("notes", func(r *Row) **string { return &r.Notes }),
	listCol("mytags", func(r *Row) *[]string { return &r.MyTags }),
	listCol("documents", func(r *Row) *[]string { return &r.Documents }),
	dateCol("reminder_date", func(r *Row) **time.Time { return &r.ReminderDate }),
	timestampCol("last_edit", func(r *Row) *time.Time { return &r.LastEdit }),
}

var columnIndex map[string]int

func init() {
	columnIndex = make(map[string]int, len(columns))
	for i := range columns {
		columnIndex[columns[i].name] = i
	}
}

// Header returns the canonical column names in canonical order.
func Header() []string {
	names := make([]string, len(columns))
	for i := range columns {
		names[i] = columns[i].name
	}
	return names
}

// enum constrains the closed integer code sets of the format.
type enum interface {
	~int
	Valid() bool
}

func parseEnum[E enum](raw string) (E, error) {
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	value := E(code)
	if !value.Valid() {
		return 0, fmt.Errorf("code %d outside the closed set", code)
	}
	return value, nil
}

var errValueRequired = errors.New("value required")

func requiredStringCol(name string, field func(*Row) *string) column {
	return column{
		name:     name,
		required: true,
		decode: func(_ *coder, raw string, row *Row) error {
			*field(row) = raw
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			return *field(row)
		},
	}
}

// plainStringCol is an optional column whose values Lsetwatch never escapes
// (platforms, counterparties, order numbers, the color code).
func plainStringCol(name string, field func(*Row) **string) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			*field(row) = &raw
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			if v := *field(row); v != nil {
				return *v
			}
			return ""
		},
	}
}

// escapedStringCol is an optional free-text column that may contain reserved
// characters; values pass through the escape codec in both directions.
func escapedStringCol(name string, field func(*Row) **string) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			decoded := Unescape(raw)
			*field(row) = &decoded
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			if v := *field(row); v != nil {
				return Escape(*v)
			}
			return ""
		},
	}
}

// intCol decodes into a non-pointer int field; an absent column keeps the
// field's schema default, and encoding always writes the value out.
func intCol(name string, field func(*Row) *int) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			*field(row) = value
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			return strconv.Itoa(*field(row))
		},
	}
}

func optionalIntCol(name string, field func(*Row) **int) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return err
			}
			*field(row) = &value
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			if v := *field(row); v != nil {
				return strconv.Itoa(*v)
			}
			return ""
		},
	}
}

func floatCol(name string, field func(*Row) **float64) column {
	return column{
		name: name,
		decode: func(c *coder, raw string, row *Row) error {
			value, err := c.parseFloat(raw)
			if err != nil {
				return err
			}
			*field(row) = &value
			return nil
		},
		encode: func(c *coder, row *Row) string {
			if v := *field(row); v != nil {
				return c.formatFloat(*v)
			}
			return ""
		},
	}
}

// enumCol decodes into a non-pointer enum field; an absent column keeps the
// zero-valued default and encoding always writes the code, defaults
// included. That mirrors what Lsetwatch itself writes.
func enumCol[E enum](name string, field func(*Row) *E) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			value, err := parseEnum[E](raw)
			if err != nil {
				return err
			}
			*field(row) = value
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			return strconv.Itoa(int(*field(row)))
		},
	}
}

func optionalEnumCol[E enum](name string, field func(*Row) **E) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			value, err := parseEnum[E](raw)
			if err != nil {
				return err
			}
			*field(row) = &value
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			if v := *field(row); v != nil {
				return strconv.Itoa(int(*v))
			}
			return ""
		},
	}
}

func dateCol(name string, field func(*Row) **time.Time) column {
	return column{
		name: name,
		decode: func(c *coder, raw string, row *Row) error {
			value, err := c.dates.parse(raw)
			if err != nil {
				return err
			}
			*field(row) = &value
			return nil
		},
		encode: func(c *coder, row *Row) string {
			if v := *field(row); v != nil {
				return c.dates.format(*v)
			}
			return ""
		},
	}
}

func boolCol(name string, field func(*Row) **bool) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			var value bool
			switch raw {
			case "0":
				value = false
			case "1":
				value = true
			default:
				return fmt.Errorf("boolean must be 0 or 1")
			}
			*field(row) = &value
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			v := *field(row)
			if v == nil {
				return ""
			}
			if *v {
				return "1"
			}
			return "0"
		},
	}
}

// listCol hands the raw column text to the list codec unchanged; items are
// not individually unescaped (Lsetwatch does not escape them
// either, see DecodeList).
func listCol(name string, field func(*Row) *[]string) column {
	return column{
		name: name,
		decode: func(_ *coder, raw string, row *Row) error {
			*field(row) = DecodeList(raw)
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			return EncodeList(*field(row))
		},
	}
}

// timestampCol is the last_edit column: integer seconds since the UNIX
// epoch, decoded to a UTC instant, encoded truncated to whole seconds.
func timestampCol(name string, field func(*Row) *time.Time) column {
	return column{
		name:     name,
		required: true,
		decode: func(_ *coder, raw string, row *Row) error {
			seconds, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return err
			}
			*field(row) = time.Unix(seconds, 0).UTC()
			return nil
		},
		encode: func(_ *coder, row *Row) string {
			return strconv.FormatInt(field(row).Unix(), 10)
		},
	}
}
