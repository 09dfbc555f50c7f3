package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NUMBER [VERSION]",
		Short: "Remove one set from the library",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, version := setArgs(args)
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				removed, err := store.Remove(cmd.Context(), number, version)
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("set %s (version %s) is not in the library", number, version)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed set %s (version %s)\n", number, version)
				return nil
			})
		},
	}

	return cmd
}
