package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/leitner/internal/bootstrap"
	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/store"
)

const allCategories = -1

func newListCommand() *cobra.Command {
	var category, limit int
	command := &cobra.Command{
		Use:   "list",
		Short: "List the cards of the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != allCategories && !card.Category(category).Valid() {
				return fmt.Errorf("category must be between %d and %d, got %d", card.CategoryNew, card.CategoryMastered, category)
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

			cards, err := fetchCards(cmd.Context(), s, category, limit)
			if err != nil {
				return err
			}
			return writeCards(cmd.OutOrStdout(), cards)
		},
	}
	command.Flags().IntVar(&category, "category", allCategories, "only list cards of this category (0 to 8)")
	command.Flags().IntVar(&limit, "limit", 0, "maximum number of cards, 0 lists every card")
	return command
}

func fetchCards(ctx context.Context, s *store.Store, category, limit int) ([]card.Card, error) {
	if limit <= 0 {
		limit = math.MaxInt32
	}
	if category != allCategories {
		cards, err := s.FetchByCategory(ctx, card.Category(category), limit)
		if err != nil {
			return nil, fmt.Errorf("FetchByCategory(%d) > %w", category, err)
		}
		return cards, nil
	}

	cards, err := s.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchAll() > %w", err)
	}
	if len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}

func writeCards(w io.Writer, cards []card.Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCATEGORY\tLAST REVIEW\tQUESTION\tANSWER")
	for _, c := range cards {
		lastReview := "-"
		if c.LastUpdate != nil {
			lastReview = c.LastUpdate.String()
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Category, lastReview, c.Question, c.Answer)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}
	return nil
}
