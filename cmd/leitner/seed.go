package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/leitner/internal/bootstrap"
)

func newSeedCommand() *cobra.Command {
	var overwrite bool
	command := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the card store from a seed file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Seed.File == "" {
				return errors.New("no seed file is configured. Set seed.file or pass --seed-file")
			}

			s, err := bootstrap.Prepare(cmd.Context(), cfg, bootstrap.PrepareOptions{
				Create:    true,
				Overwrite: overwrite,
			}, slog.Default())
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
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s holds %d cards\n", s.Path(), len(cards))
			return nil
		},
	}
	command.Flags().String("seed-file", "", "seed file to load (JSON or YAML), overrides seed.file")
	command.Flags().BoolVar(&overwrite, "overwrite", false, "remove the existing card store first")
	return command
}
