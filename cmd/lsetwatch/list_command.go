package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var importID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sets in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				var (
					entries []*library.Entry
					err     error
				)
				if importID != "" {
					entries, err = store.ListByImport(cmd.Context(), importID)
				} else {
					entries, err = store.List(cmd.Context())
				}
				if err != nil {
					return err
				}

				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Library is empty")
					return nil
				}

				color := false
				if f, ok := cmd.OutOrStdout().(*os.File); ok {
					color = shouldColorize(f)
				}

				headers := []string{"Set", "Version", "Group", "State", "Price", "Last Edit"}
				aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					row := entry.Row
					rows = append(rows, []string{
						row.Number,
						row.Version,
						stringOrDash(row.MyGroup),
						renderState(row.State, color),
						renderPrice(row.PurchasePrice),
						row.LastEdit.Format("2006-01-02 15:04"),
					})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				fmt.Fprintf(cmd.OutOrStdout(), "%d set(s)\n", len(entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&importID, "import", "", "Only show entries from one import run")

	return cmd
}

func stringOrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func renderState(state *lsetcsv.SetStatus, color bool) string {
	if state == nil {
		return "-"
	}
	return colorize(state.String(), stateKind(*state), color)
}

func renderPrice(value *float64) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(*value, 'f', 2, 64)
}
