package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/leitner/internal/bootstrap"
	"github.com/at-ishikawa/leitner/internal/card"
)

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q: %w", args[0], err)
			}
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			s, err := bootstrap.Prepare(cmd.Context(), cfg, bootstrap.PrepareOptions{}, slog.Default())
			if err != nil {
				return fmt.Errorf("bootstrap.Prepare() > %w", err)
			}
			defer func() {
				_ = s.Close()
			}()

			if err := s.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, card.ErrNotFound) {
					return fmt.Errorf("card %d does not exist: %w", id, err)
				}
				return fmt.Errorf("Delete(%d) > %w", id, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted card %d\n", id)
			return nil
		},
	}
}
