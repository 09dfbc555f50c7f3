package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lsetwatch/internal/config"
	"lsetwatch/internal/library"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry from the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("clear deletes the whole library; re-run with --force to confirm")
			}
			return ctx.withStore(func(cfg *config.Config, store *library.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deleting every entry")

	return cmd
}
