// Package statistics summarizes the state of a deck.
package statistics

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/leitner"
)

// Summary holds the per-category counts of a deck on a given day
type Summary struct {
	Day    card.DayStamp
	Counts [card.CategoryMastered + 1]int
	// Due is the number of box cards with a positive score on Day
	Due   int
	Total int
}

// Summarize counts cards by category and the box cards due on today.
func Summarize(cards []card.Card, today card.DayStamp, table card.CoefficientTable) Summary {
	summary := Summary{Day: today}
	for _, c := range cards {
		if !c.Category.Valid() {
			continue
		}
		summary.Counts[c.Category]++
		summary.Total++
		if leitner.Score(today, c, table) > 0 {
			summary.Due++
		}
	}
	return summary
}

// Count returns the number of cards in category.
func (s Summary) Count(category card.Category) int {
	if !category.Valid() {
		return 0
	}
	return s.Counts[category]
}

// Write prints one line per category followed by the totals.
func Write(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CATEGORY\tCARDS")
	for _, category := range card.Categories() {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", category, s.Counts[category])
	}
	_, _ = fmt.Fprintf(tw, "total\t%d\n", s.Total)
	_, _ = fmt.Fprintf(tw, "due on %s\t%d\n", s.Day, s.Due)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}
	return nil
}
