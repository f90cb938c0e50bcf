package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/leitner/internal/bootstrap"
	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/cli"
	"github.com/at-ishikawa/leitner/internal/config"
	"github.com/at-ishikawa/leitner/internal/leitner"
)

func newReviewCommand() *cobra.Command {
	var date dayFlag
	command := &cobra.Command{
		Use:   "review",
		Short: "Review a session of due, mastered and new cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runReview(cmd.Context(), cfg, date.Day(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	command.Flags().Var(&date, "date", "review as of this day (YYYY-MM-DD), defaults to today")
	command.Flags().Int("size", 0, "number of cards in the session, overrides session.total_size")
	command.Flags().String("seed-file", "", "seed file used when the card store is empty, overrides seed.file")
	return command
}

func runReview(ctx context.Context, cfg *config.Config, today card.DayStamp, stdin io.Reader, stdout io.Writer) error {
	log := slog.Default().With("session_id", uuid.NewString())
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	app := bootstrap.New()
	return app.Run(ctx, func(ctx context.Context) error {
		s, err := bootstrap.Prepare(ctx, cfg, bootstrap.PrepareOptions{Create: true}, log)
		if err != nil {
			return fmt.Errorf("bootstrap.Prepare() > %w", err)
		}
		app.AddShutdownHook(func(ctx context.Context) error {
			return s.Close()
		})

		table, err := s.Coefficients(ctx)
		if err != nil {
			return fmt.Errorf("Coefficients() > %w", err)
		}
		session, err := leitner.NewSelector(s, cfg.Session.Selection(), rng).BuildSession(ctx, today)
		if err != nil {
			return fmt.Errorf("BuildSession() > %w", err)
		}
		log.Info("review started", "cards", len(session), "day", today.String())

		review := cli.NewReviewCLI(s, session, cli.ReviewOptions{
			Today:         today,
			Table:         table,
			FrontLanguage: cfg.Session.FrontLanguage,
			BackLanguage:  cfg.Session.BackLanguage,
			HideInputHelp: cfg.Session.HideInputHelp,
		}, rng, stdin, stdout, log)
		return cli.Run(ctx, review, stdout)
	})
}
