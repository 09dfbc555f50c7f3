package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		dryRun bool
		format formatFlags
	)

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import Lsetwatch export files into the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}

				importID := library.NewImportID()
				opts := format.options(cfg)
				total := 0
				for _, path := range args {
					count, err := importFile(cmd, store, opts, path, importID, dryRun)
					if err != nil {
						return fmt.Errorf("import %s: %w", path, err)
					}
					total += count
				}

				if dryRun {
					logger.Info("dry run finished", "component", "import", "files", len(args), "rows", total)
					fmt.Fprintf(cmd.OutOrStdout(), "Parsed %d rows from %d file(s); nothing stored\n", total, len(args))
					return nil
				}

				logger.Info("import finished", "component", "import", "import_id", importID, "files", len(args), "rows", total)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows from %d file(s)\n", total, len(args))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse the files without storing anything")
	format.register(cmd)

	return cmd
}

func importFile(cmd *cobra.Command, store *library.Store, opts lsetcsv.Options, path, importID string, dryRun bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader, err := lsetcsv.NewReader(file, opts)
	if err != nil {
		return 0, err
	}

	count := 0
	for reader.Next() {
		if !dryRun {
			if _, err := store.Upsert(cmd.Context(), reader.Row(), importID); err != nil {
				return count, err
			}
		}
		count++
	}
	return count, reader.Err()
}
