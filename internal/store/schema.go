package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/schemas"
)

const seedBatchSize = 500

// goose keeps its settings in package state.
var gooseMu sync.Mutex

// gooseLogger forwards goose output to slog at debug level.
type gooseLogger struct {
	log *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// CreateSchema applies the embedded migrations.
func (s *Store) CreateSchema(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(schemas.Migrations)
	goose.SetLogger(gooseLogger{log: s.log})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose.SetDialect() > %w", err)
	}
	if err := goose.UpContext(ctx, s.db.DB, schemas.MigrationsDir); err != nil {
		return fmt.Errorf("goose.UpContext() > %w", err)
	}
	s.log.Debug("schema is up to date")
	return nil
}

// IsEmpty reports whether the store holds no card.
func (s *Store) IsEmpty(ctx context.Context) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From(cardsTable).ToSql()
	if err != nil {
		return false, fmt.Errorf("build count query: %w", err)
	}
	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count cards: %w", err)
	}
	return count == 0, nil
}

// Seed inserts cards and the coefficient table in a single transaction.
// Coefficient rows already stored are kept as they are.
func (s *Store) Seed(ctx context.Context, cards []card.Card, table card.CoefficientTable) error {
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d (%s) > %w", i, c.Answer, err)
		}
	}

	if err := runInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := insertCoefficients(ctx, tx, table); err != nil {
			return err
		}
		for start := 0; start < len(cards); start += seedBatchSize {
			end := min(start+seedBatchSize, len(cards))
			insert := qb.Insert(cardsTable).Columns(insertColumns...)
			for _, c := range cards[start:end] {
				insert = insert.Values(cardValues(c)...)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build insert query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert cards: %w", err)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	s.log.Debug("inserted seed cards", "cards", len(cards))
	return nil
}

// SaveCoefficients stores the rows of table that are not stored yet.
func (s *Store) SaveCoefficients(ctx context.Context, table card.CoefficientTable) error {
	return runInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return insertCoefficients(ctx, tx, table)
	})
}

func insertCoefficients(ctx context.Context, tx *sqlx.Tx, table card.CoefficientTable) error {
	insert := qb.Insert(scoresTable).
		Options("OR IGNORE").
		Columns("category", "age", "coefficient")
	for _, row := range table.Rows() {
		insert = insert.Values(int(row.Category), row.AgeThreshold, row.Coefficient)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build coefficient query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert coefficients: %w", err)
	}
	return nil
}

// Coefficients returns the stored coefficient table.
func (s *Store) Coefficients(ctx context.Context) (card.CoefficientTable, error) {
	query, args, err := qb.Select("category", "age", "coefficient").
		From(scoresTable).
		OrderBy("category").
		ToSql()
	if err != nil {
		return card.CoefficientTable{}, fmt.Errorf("build coefficient query: %w", err)
	}
	var rows []card.CategoryCoefficient
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return card.CoefficientTable{}, fmt.Errorf("load coefficients: %w", err)
	}
	table, err := card.CoefficientTableFromRows(rows)
	if err != nil {
		return card.CoefficientTable{}, fmt.Errorf("card.CoefficientTableFromRows() > %w", err)
	}
	return table, nil
}
