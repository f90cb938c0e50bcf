// Package testutil provides shared test helpers for creating config files and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/config"
)

// ReferenceDay is 2024-03-06, the fixed day of the staircase fixture.
const ReferenceDay card.DayStamp = 19788

// SeedJSON is a small seed file with one new card, one box card and one mastered card.
const SeedJSON = `{
  "cat": {
    "translation": "chat",
    "examples": {"fr": ["le chat dort"], "en": ["the cat sleeps"]}
  },
  "dog": {
    "translation": "chien",
    "category": 2,
    "last_update": "2024-03-01"
  },
  "house": {
    "translation": "maison",
    "category": 8,
    "last_update": "2024-01-15",
    "examples": {"fr": ["une grande maison", "la maison bleue"], "en": ["a big house", "the blue house"]}
  }
}
`

// WriteSeedFile writes content as a seed file named name in dir and returns its path.
func WriteSeedFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// SetupTestConfig writes a config file pointing at a database and the SeedJSON seed file inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	seedPath := WriteSeedFile(t, tmpDir, "words.json", SeedJSON)
	configContent := fmt.Sprintf(`database:
  path: %s
seed:
  file: %s
session:
  total_size: 10
`,
		filepath.Join(tmpDir, "leitner.db"),
		seedPath,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewConfig returns the default configuration with its database in tmpDir and the power of two scoring curve.
// seedFile may be empty.
func NewConfig(tmpDir, seedFile string) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Path:         filepath.Join(tmpDir, "leitner.db"),
			OpenAttempts: 1,
		},
		Seed: config.SeedConfig{File: seedFile},
		Session: config.SessionConfig{
			TotalSize:     100,
			ReviewPercent: 80,
			KnownPercent:  4,
			HideInputHelp: true,
			FrontLanguage: card.LangFrench,
			BackLanguage:  card.LangEnglish,
		},
		Scoring: config.ScoringConfig{
			Coefficients: card.PowerOfTwoCoefficients(),
		},
	}
}

// StaircaseDeck returns one card per box, from box 7 down to box 1,
// each last reviewed exactly its box threshold before today.
func StaircaseDeck(table card.CoefficientTable, today card.DayStamp) []card.Card {
	deck := make([]card.Card, 0, card.MaxBox)
	for category := card.MaxBox; category >= card.MinBox; category-- {
		age := table.Get(category).AgeThreshold
		c := card.NewCard(fmt.Sprintf("question %d", category), fmt.Sprintf("answer %d", category), nil)
		deck = append(deck, c.Reviewed(category, today-card.DayStamp(age)))
	}
	return deck
}
