// Package store persists cards and the coefficient table in a SQLite file.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/at-ishikawa/leitner/internal/config"
)

const (
	driverName       = "sqlite"
	busyTimeout      = 5 * time.Second
	openRetryDelay   = 100 * time.Millisecond
	defaultOpenTries = 1
)

// ErrStoreNotFound is returned when the database file does not exist and may not be created.
var ErrStoreNotFound = errors.New("card store not found")

// OpenOptions controls how Open treats a missing database file.
type OpenOptions struct {
	Create bool
}

// Store reads and writes cards. Every write is committed immediately.
type Store struct {
	db      *sqlx.DB
	path    string
	created bool
	log     *slog.Logger
}

// New wraps an open database handle.
func New(db *sqlx.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{db: db, log: log}
}

// Open opens the database file at cfg.Path.
// A missing file is created only when opts.Create is set, otherwise ErrStoreNotFound is returned.
func Open(ctx context.Context, cfg config.DatabaseConfig, opts OpenOptions) (*Store, error) {
	created := false
	if _, err := os.Stat(cfg.Path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("os.Stat(%s) > %w", cfg.Path, err)
		}
		if !opts.Create {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, cfg.Path)
		}
		created = true
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, busyTimeout.Milliseconds())
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(%s) > %w", cfg.Path, err)
	}

	attempts := cfg.OpenAttempts
	if attempts == 0 {
		attempts = defaultOpenTries
	}
	if err := retry.Do(
		func() error {
			if err := db.PingContext(ctx); err != nil {
				if !isBusy(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Debug("database is busy, retrying", "path", cfg.Path, "error", err)
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(openRetryDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext(%s) > %w", cfg.Path, err)
	}

	s := New(db, slog.Default().With("path", cfg.Path))
	s.path = cfg.Path
	s.created = created
	return s, nil
}

// Remove deletes the database file at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove(%s) > %w", path, err)
	}
	return nil
}

// Created reports whether Open created the database file.
func (s *Store) Created() bool {
	return s.created
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("db.Close() > %w", err)
	}
	return nil
}

func isBusy(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code() & 0xff
	return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
}

// runInTx runs fn within a transaction, rolling back when fn fails.
func runInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
