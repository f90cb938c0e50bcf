package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/at-ishikawa/leitner/internal/card"
)

const (
	cardsTable  = "cards"
	scoresTable = "category_scores"
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	insertColumns = []string{"category", "last_update", "question", "answer", "examples"}
	cardColumns   = append([]string{"id"}, insertColumns...)
)

func qualifiedCardColumns() []string {
	res := make([]string, 0, len(cardColumns))
	for _, column := range cardColumns {
		res = append(res, fmt.Sprintf("%s.%s AS %s", cardsTable, column, column))
	}
	return res
}

func lastUpdateArg(c card.Card) any {
	if c.LastUpdate == nil {
		return nil
	}
	return c.LastUpdate.Int64()
}

func cardValues(c card.Card) []any {
	return []any{int(c.Category), lastUpdateArg(c), c.Question, c.Answer, c.Examples}
}

func (s *Store) selectCards(ctx context.Context, builder sq.SelectBuilder) ([]card.Card, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}
	cards := []card.Card{}
	if err := s.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}
	return cards, nil
}

// FetchAll returns every card ordered by ID.
func (s *Store) FetchAll(ctx context.Context) ([]card.Card, error) {
	return s.selectCards(ctx, qb.Select(cardColumns...).From(cardsTable).OrderBy("id"))
}

// Get returns the card with id, or card.ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (card.Card, error) {
	query, args, err := qb.Select(cardColumns...).From(cardsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return card.Card{}, fmt.Errorf("build select query: %w", err)
	}
	var c card.Card
	if err := s.db.GetContext(ctx, &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return card.Card{}, fmt.Errorf("%w: id %d", card.ErrNotFound, id)
		}
		return card.Card{}, fmt.Errorf("get card %d: %w", id, err)
	}
	return c, nil
}

// FetchByCategory returns up to limit cards of category, least recently reviewed first.
func (s *Store) FetchByCategory(ctx context.Context, category card.Category, limit int) ([]card.Card, error) {
	if limit <= 0 {
		return []card.Card{}, nil
	}
	return s.selectCards(ctx, qb.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"category": int(category)}).
		OrderBy("last_update ASC", "id ASC").
		Suffix("LIMIT ?", limit))
}

// FetchDueWithScore returns up to limit box cards scored for today, most urgent first.
// Cards with equal scores are ordered by ID.
func (s *Store) FetchDueWithScore(ctx context.Context, today card.DayStamp, limit int) ([]card.Scored, error) {
	if limit <= 0 {
		return []card.Scored{}, nil
	}

	day := today.Int64()
	score := sq.Alias(sq.Expr(`CASE
		WHEN ? - cards.last_update - category_scores.age < 0 THEN 0
		ELSE (? - cards.last_update - category_scores.age + 1) * category_scores.coefficient
	END`, day, day), "score")

	query, args, err := qb.Select(qualifiedCardColumns()...).
		Column(score).
		From(cardsTable).
		Join(scoresTable + " ON category_scores.category = cards.category").
		Where(sq.And{
			sq.GtOrEq{"cards.category": int(card.MinBox)},
			sq.LtOrEq{"cards.category": int(card.MaxBox)},
			sq.NotEq{"cards.last_update": nil},
		}).
		OrderBy("score DESC", "cards.id ASC").
		Suffix("LIMIT ?", limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build due query: %w", err)
	}

	scored := []card.Scored{}
	if err := s.db.SelectContext(ctx, &scored, query, args...); err != nil {
		return nil, fmt.Errorf("select due cards: %w", err)
	}
	return scored, nil
}

// FetchNew returns up to limit random unseen cards.
func (s *Store) FetchNew(ctx context.Context, limit int) ([]card.Card, error) {
	if limit <= 0 {
		return []card.Card{}, nil
	}
	return s.selectCards(ctx, qb.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"category": int(card.CategoryNew)}).
		OrderBy("random()").
		Suffix("LIMIT ?", limit))
}

// FetchMastered returns up to limit mastered cards, most recently reviewed first.
func (s *Store) FetchMastered(ctx context.Context, limit int) ([]card.Card, error) {
	if limit <= 0 {
		return []card.Card{}, nil
	}
	return s.selectCards(ctx, qb.Select(cardColumns...).
		From(cardsTable).
		Where(sq.Eq{"category": int(card.CategoryMastered)}).
		OrderBy("last_update DESC", "id ASC").
		Suffix("LIMIT ?", limit))
}

// Insert stores a new card and sets its ID.
func (s *Store) Insert(ctx context.Context, c *card.Card) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	query, args, err := qb.Insert(cardsTable).Columns(insertColumns...).Values(cardValues(*c)...).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert query: %w", err)
	}
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert card: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	c.ID = id
	return id, nil
}

// Update overwrites the stored card with the same ID.
func (s *Store) Update(ctx context.Context, c card.Card) error {
	if err := c.Validate(); err != nil {
		return err
	}
	query, args, err := qb.Update(cardsTable).
		Set("category", int(c.Category)).
		Set("last_update", lastUpdateArg(c)).
		Set("question", c.Question).
		Set("answer", c.Answer).
		Set("examples", c.Examples).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update card %d: %w", c.ID, err)
	}
	if err := requireAffected(result, c.ID); err != nil {
		return err
	}
	s.log.Debug("updated card", "id", c.ID, "category", int(c.Category))
	return nil
}

// Delete removes the card with id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(cardsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	if err := requireAffected(result, id); err != nil {
		return err
	}
	s.log.Debug("deleted card", "id", id)
	return nil
}

func requireAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", card.ErrNotFound, id)
	}
	return nil
}
