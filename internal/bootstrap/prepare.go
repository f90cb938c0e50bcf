// Package bootstrap opens the card store for a command and manages the command lifecycle.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/leitner/internal/config"
	"github.com/at-ishikawa/leitner/internal/seed"
	"github.com/at-ishikawa/leitner/internal/store"
)

// PrepareOptions controls how Prepare treats the database file.
type PrepareOptions struct {
	// Create allows a missing database file to be created.
	Create bool
	// Overwrite removes the database file first. It implies Create.
	Overwrite bool
}

// Prepare opens the card store, migrates its schema and seeds it when it holds no card.
// The caller owns the returned store and must close it.
func Prepare(ctx context.Context, cfg *config.Config, opts PrepareOptions, log *slog.Logger) (*store.Store, error) {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("path", cfg.Database.Path)

	if opts.Overwrite {
		if err := store.Remove(cfg.Database.Path); err != nil {
			return nil, fmt.Errorf("store.Remove() > %w", err)
		}
		log.Info("removed card store")
	}

	s, err := store.Open(ctx, cfg.Database, store.OpenOptions{Create: opts.Create || opts.Overwrite})
	if err != nil {
		return nil, fmt.Errorf("store.Open() > %w", err)
	}
	if err := ready(ctx, s, cfg, log); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func ready(ctx context.Context, s *store.Store, cfg *config.Config, log *slog.Logger) error {
	if err := s.CreateSchema(ctx); err != nil {
		return fmt.Errorf("CreateSchema() > %w", err)
	}
	if s.Created() {
		log.Info("created card store")
	}

	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("IsEmpty() > %w", err)
	}
	if !empty {
		return nil
	}

	table, err := cfg.Scoring.Table()
	if err != nil {
		return err
	}
	if cfg.Seed.File == "" {
		log.Warn("card store is empty and no seed file is configured")
		if err := s.SaveCoefficients(ctx, table); err != nil {
			return fmt.Errorf("SaveCoefficients() > %w", err)
		}
		return nil
	}

	cards, err := seed.Load(cfg.Seed.File)
	if err != nil {
		return fmt.Errorf("seed.Load() > %w", err)
	}
	if err := s.Seed(ctx, cards, table); err != nil {
		return fmt.Errorf("Seed() > %w", err)
	}
	log.Info("seeded card store", "seed_file", cfg.Seed.File, "cards", len(cards))
	return nil
}
