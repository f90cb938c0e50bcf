// Package leitner implements the Leitner-box engine: urgency scoring, session selection
// and the category transitions applied after each answer.
package leitner

import (
	"cmp"
	"slices"

	"github.com/at-ishikawa/leitner/internal/card"
)

// Score returns how overdue c is on today.
// Only review boxes score. A card whose age has not reached its box threshold scores 0,
// otherwise the score is (elapsed + 1) * coefficient where elapsed counts the days past the threshold.
func Score(today card.DayStamp, c card.Card, table card.CoefficientTable) int64 {
	if !c.Category.IsBox() {
		return 0
	}
	age, ok := c.Age(today)
	if !ok {
		return 0
	}
	row := table.Get(c.Category)
	elapsed := age - row.AgeThreshold
	if elapsed < 0 {
		return 0
	}
	return (elapsed + 1) * row.Coefficient
}

// RankDue scores the box cards among cards and returns them ordered by score descending,
// ties broken by ID ascending, truncated to limit.
func RankDue(cards []card.Card, today card.DayStamp, table card.CoefficientTable, limit int) []card.Scored {
	if limit <= 0 {
		return []card.Scored{}
	}

	ranked := make([]card.Scored, 0, len(cards))
	for _, c := range cards {
		if !c.Category.IsBox() || c.LastUpdate == nil {
			continue
		}
		ranked = append(ranked, card.Scored{
			Card:  c,
			Score: Score(today, c, table),
		})
	}
	slices.SortStableFunc(ranked, func(a, b card.Scored) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
