package leitner

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/at-ishikawa/leitner/internal/card"
)

// SessionConfig sizes a review session.
type SessionConfig struct {
	TotalSize     int
	ReviewPercent int
	KnownPercent  int
}

// ReviewLimit is the maximum number of due box cards in a session.
func (cfg SessionConfig) ReviewLimit() int {
	return cfg.TotalSize * cfg.ReviewPercent / 100
}

// KnownLimit is the maximum number of mastered cards in a session.
func (cfg SessionConfig) KnownLimit() int {
	return cfg.TotalSize * cfg.KnownPercent / 100
}

//go:generate mockgen -source=selection.go -destination=../mocks/leitner/mock_source.go -package=mock_leitner Source

// Source provides the candidate pools of a session.
type Source interface {
	FetchDueWithScore(ctx context.Context, today card.DayStamp, limit int) ([]card.Scored, error)
	FetchMastered(ctx context.Context, limit int) ([]card.Card, error)
	FetchNew(ctx context.Context, limit int) ([]card.Card, error)
}

// Session is the ordered list of cards to review.
type Session []card.Card

// Selector builds review sessions.
type Selector struct {
	source Source
	config SessionConfig
	rng    *rand.Rand
}

// NewSelector returns a selector drawing from source and shuffling with rng.
func NewSelector(source Source, config SessionConfig, rng *rand.Rand) *Selector {
	return &Selector{
		source: source,
		config: config,
		rng:    rng,
	}
}

// BuildSession mixes the most overdue box cards, a few mastered cards and new cards
// filling the remaining room, and shuffles the result.
func (s *Selector) BuildSession(ctx context.Context, today card.DayStamp) (Session, error) {
	due, err := s.source.FetchDueWithScore(ctx, today, s.config.ReviewLimit())
	if err != nil {
		return nil, fmt.Errorf("FetchDueWithScore() > %w", err)
	}
	mastered, err := s.source.FetchMastered(ctx, s.config.KnownLimit())
	if err != nil {
		return nil, fmt.Errorf("FetchMastered() > %w", err)
	}

	var fresh []card.Card
	newLimit := max(s.config.TotalSize-len(due)-len(mastered), 0)
	if newLimit > 0 {
		fresh, err = s.source.FetchNew(ctx, newLimit)
		if err != nil {
			return nil, fmt.Errorf("FetchNew() > %w", err)
		}
	}

	session := make(Session, 0, len(due)+len(mastered)+len(fresh))
	for _, scored := range due {
		session = append(session, scored.Card)
	}
	session = append(session, mastered...)
	session = append(session, fresh...)

	for i := len(session) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		session[i], session[j] = session[j], session[i]
	}
	return session, nil
}
