package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NUMBER [VERSION]",
		Short: "Show the stored details of one set",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, version := setArgs(args)
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				entry, err := store.GetBySet(cmd.Context(), number, version)
				if err != nil {
					return err
				}
				if entry == nil {
					return fmt.Errorf("set %s (version %s) is not in the library", number, version)
				}
				printEntry(cmd.OutOrStdout(), entry)
				return nil
			})
		},
	}

	return cmd
}

func setArgs(args []string) (number, version string) {
	number = args[0]
	version = "1"
	if len(args) > 1 {
		version = args[1]
	}
	return number, version
}

func printEntry(out io.Writer, entry *library.Entry) {
	row := entry.Row

	fmt.Fprintf(out, "Set %s (version %s)\n", row.Number, row.Version)
	printField(out, "Template", row.Template.String())
	if row.State != nil {
		printField(out, "State", row.State.String())
	}
	printOptString(out, "Group", row.MyGroup)
	printOptString(out, "Color", row.Color)
	if row.Marker != 0 {
		printField(out, "Marker", strconv.Itoa(row.Marker))
	}

	printTrade(out, "Purchase", tradeDetails{
		condition: row.PurchaseCondition,
		platform:  row.PurchasePlatform,
		person:    row.PurchasePerson,
		date:      row.PurchaseDate,
		number:    row.PurchaseNumber,
		price:     row.PurchasePrice,
		shipping:  row.PurchaseShipping,
		costs:     row.PurchaseCosts,
		items:     row.PurchaseItems,
	})
	printTrade(out, "Sale", tradeDetails{
		condition: row.SellCondition,
		platform:  row.SellPlatform,
		person:    row.SellPerson,
		date:      row.SellDate,
		number:    row.SellNumber,
		price:     row.SellPrice,
		shipping:  row.SellShipping,
		costs:     row.SellCosts,
		items:     row.SellItems,
	})

	printOptFloat(out, "VIP points earned", row.VIPPointsEarned)
	printOptFloat(out, "VIP points redeemed", row.VIPPointsRedeemed)
	if row.Cashback != nil {
		value := renderFloat(*row.Cashback)
		if row.CashbackType != nil {
			value += " (" + row.CashbackType.String() + ")"
		}
		printField(out, "Cashback", value)
	}

	printOptString(out, "Location", row.Location)
	printOptString(out, "Addition", row.Addition)
	printField(out, "Completeness", row.Completeness.String())
	if row.AlternPieces != nil {
		printField(out, "Alternate pieces", strconv.Itoa(*row.AlternPieces))
	}
	printField(out, "Packaging", row.Packaging.String())
	printField(out, "Instructions", row.Instructions.String())
	printOptFloat(out, "Sales value", row.SalesValue)
	if row.ToSell != nil {
		printField(out, "To sell", strconv.FormatBool(*row.ToSell))
	}
	printOptString(out, "Notes", row.Notes)
	if len(row.MyTags) > 0 {
		printField(out, "Tags", strings.Join(row.MyTags, ", "))
	}
	if len(row.Documents) > 0 {
		printField(out, "Documents", strings.Join(row.Documents, ", "))
	}
	if row.ReminderDate != nil {
		printField(out, "Reminder", row.ReminderDate.Format("2006-01-02"))
	}
	printField(out, "Last edit", row.LastEdit.Format(time.RFC3339))

	fmt.Fprintln(out)
	printField(out, "Import", entry.ImportID)
	printField(out, "Stored", entry.CreatedAt.Format(time.RFC3339))
	printField(out, "Updated", entry.UpdatedAt.Format(time.RFC3339))
}

type tradeDetails struct {
	condition *lsetcsv.Condition
	platform  *string
	person    *string
	date      *time.Time
	number    *string
	price     *float64
	shipping  *float64
	costs     *float64
	items     int
}

func (t tradeDetails) empty() bool {
	return t.condition == nil && t.platform == nil && t.person == nil &&
		t.date == nil && t.number == nil && t.price == nil &&
		t.shipping == nil && t.costs == nil
}

func printTrade(out io.Writer, label string, t tradeDetails) {
	if t.empty() {
		return
	}
	fmt.Fprintf(out, "%s:\n", label)
	if t.condition != nil {
		printField(out, "  Condition", t.condition.String())
	}
	printOptString(out, "  Platform", t.platform)
	printOptString(out, "  Person", t.person)
	if t.date != nil {
		printField(out, "  Date", t.date.Format("2006-01-02"))
	}
	printOptString(out, "  Order number", t.number)
	printOptFloat(out, "  Price", t.price)
	printOptFloat(out, "  Shipping", t.shipping)
	printOptFloat(out, "  Extra costs", t.costs)
	if t.items != 1 {
		printField(out, "  Items", strconv.Itoa(t.items))
	}
}

func printField(out io.Writer, label, value string) {
	fmt.Fprintf(out, "%-22s %s\n", label+":", value)
}

func printOptString(out io.Writer, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	printField(out, label, *value)
}

func printOptFloat(out io.Writer, label string, value *float64) {
	if value == nil {
		return
	}
	printField(out, label, renderFloat(*value))
}

func renderFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
