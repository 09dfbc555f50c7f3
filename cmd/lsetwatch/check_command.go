package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lsetwatch/internal/lsetcsv"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var format formatFlags

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate export files without touching the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			color := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				color = shouldColorize(f)
			}

			failed := 0
			for _, path := range args {
				rows, err := checkFile(path, format.options(cfg))
				if err != nil {
					failed++
					label := colorize("ERROR", statusBad, color)
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s: %s\n", label, path, err)
					continue
				}
				label := colorize("OK", statusGood, color)
				fmt.Fprintf(cmd.OutOrStdout(), "%s     %s: %d rows\n", label, path, rows)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
			}
			return nil
		},
	}

	format.register(cmd)

	return cmd
}

func checkFile(path string, opts lsetcsv.Options) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader, err := lsetcsv.NewReader(file, opts)
	if err != nil {
		return 0, err
	}

	rows := 0
	for reader.Next() {
		rows++
	}
	return rows, reader.Err()
}
