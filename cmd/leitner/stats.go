package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/leitner/internal/bootstrap"
	"github.com/at-ishikawa/leitner/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var date dayFlag
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the number of cards per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			cards, err := s.FetchAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("FetchAll() > %w", err)
			}
			table, err := s.Coefficients(cmd.Context())
			if err != nil {
				return fmt.Errorf("Coefficients() > %w", err)
			}
			return statistics.Write(cmd.OutOrStdout(), statistics.Summarize(cards, date.Day(), table))
		},
	}
	command.Flags().Var(&date, "date", "count due cards as of this day (YYYY-MM-DD), defaults to today")
	return command
}
