package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
	"lsetwatch/internal/lsetcsv"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		noHeader   bool
		format     formatFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library as an Lsetwatch export file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}

				var out io.Writer = cmd.OutOrStdout()
				if outputPath != "" {
					file, err := os.Create(outputPath)
					if err != nil {
						return fmt.Errorf("create %s: %w", outputPath, err)
					}
					defer file.Close()
					out = file
				}

				writeHeader := cfg.Format.WriteHeader && !noHeader
				if err := exportEntries(out, format.options(cfg), writeHeader, entries); err != nil {
					return err
				}

				if outputPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(entries), outputPath)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip the header line")
	format.register(cmd)

	return cmd
}

func exportEntries(out io.Writer, opts lsetcsv.Options, writeHeader bool, entries []*library.Entry) error {
	writer, err := lsetcsv.NewWriter(out, opts)
	if err != nil {
		return err
	}
	if writeHeader {
		if err := writer.WriteHeader(); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if err := writer.Write(entry.Row); err != nil {
			return err
		}
	}
	return writer.Flush()
}
