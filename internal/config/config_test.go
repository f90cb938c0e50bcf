package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/leitner"
)

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "leitner.db",
			OpenAttempts: 3,
		},
		Session: SessionConfig{
			TotalSize:     100,
			ReviewPercent: 80,
			KnownPercent:  4,
			HideInputHelp: true,
			FrontLanguage: "fr",
			BackLanguage:  "en",
		},
		Scoring: ScoringConfig{
			Coefficients: DefaultCoefficients(),
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(seedFile, []byte("{}"), 0644))

	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `database:
  path: custom/deck.db
  open_attempts: 5
seed:
  file: ` + seedFile + `
session:
  total_size: 40
  review_percent: 50
  known_percent: 10
  hide_input_help: false
  front_language: en
  back_language: fr
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database = DatabaseConfig{Path: "custom/deck.db", OpenAttempts: 5}
				cfg.Seed.File = seedFile
				cfg.Session = SessionConfig{
					TotalSize:     40,
					ReviewPercent: 50,
					KnownPercent:  10,
					HideInputHelp: false,
					FrontLanguage: "en",
					BackLanguage:  "fr",
				}
				return cfg
			},
		},
		{
			name: "custom coefficients",
			configContent: `scoring:
  coefficients:
    - {age: 1, coefficient: 64}
    - {age: 2, coefficient: 32}
    - {age: 4, coefficient: 16}
    - {age: 8, coefficient: 8}
    - {age: 16, coefficient: 4}
    - {age: 32, coefficient: 2}
    - {age: 64, coefficient: 1}
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Scoring.Coefficients = card.PowerOfTwoCoefficients()
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `database:
  path: deck.db
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys use defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name:    "no config file uses defaults",
			want:    defaultConfig,
			wantErr: false,
		},
		{
			name: "explicit config file path",
			configContent: `database:
  path: explicit.db
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Path = "explicit.db"
				return cfg
			},
		},
		{
			name: "missing seed file",
			configContent: `seed:
  file: does/not/exist.json
`,
			wantErr:           true,
			wantErrorContains: []string{"seed.file must be an existing and readable file"},
		},
		{
			name: "percentages over 100",
			configContent: `session:
  review_percent: 90
  known_percent: 20
`,
			wantErr:           true,
			wantErrorContains: []string{"session.known_percent and review_percent must not add up to more than 100"},
		},
		{
			name: "percentage out of range",
			configContent: `session:
  review_percent: 101
  known_percent: 0
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration"},
		},
		{
			name: "wrong number of coefficients",
			configContent: `scoring:
  coefficients:
    - {age: 1, coefficient: 64}
`,
			wantErr:           true,
			wantErrorContains: []string{"coefficients"},
		},
		{
			name: "negative coefficient",
			configContent: `scoring:
  coefficients:
    - {age: 1, coefficient: 64}
    - {age: 2, coefficient: 32}
    - {age: 4, coefficient: 16}
    - {age: 8, coefficient: -8}
    - {age: 16, coefficient: 4}
    - {age: 32, coefficient: 2}
    - {age: 64, coefficient: 1}
`,
			wantErr:           true,
			wantErrorContains: []string{"coefficient"},
		},
		{
			name: "empty database path",
			configContent: `database:
  path: ""
`,
			wantErr:           true,
			wantErrorContains: []string{"path is a required field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_Environment(t *testing.T) {
	seedFile := filepath.Join(t.TempDir(), "words.yml")
	require.NoError(t, os.WriteFile(seedFile, []byte("{}"), 0644))

	t.Chdir(t.TempDir())
	t.Setenv("LEITNER_DB_PATH", "from-env.db")
	t.Setenv("LEITNER_SEED_FILE", seedFile)

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", got.Database.Path)
	assert.Equal(t, seedFile, got.Seed.File)
}

func TestConfigLoader_BindFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.Int("size", 0, "")
	flags.Bool("unrelated", false, "")
	require.NoError(t, flags.Parse([]string{"--db", "flag.db"}))

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	require.NoError(t, loader.BindFlags(flags))

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", got.Database.Path)
	// An unset flag keeps the default.
	assert.Equal(t, 100, got.Session.TotalSize)
}

func TestSessionConfig_Selection(t *testing.T) {
	cfg := SessionConfig{TotalSize: 50, ReviewPercent: 60, KnownPercent: 10}
	assert.Equal(t, leitner.SessionConfig{TotalSize: 50, ReviewPercent: 60, KnownPercent: 10}, cfg.Selection())
}

func TestScoringConfig_Table(t *testing.T) {
	table, err := ScoringConfig{Coefficients: DefaultCoefficients()}.Table()
	require.NoError(t, err)
	assert.Equal(t, card.CategoryCoefficient{Category: 1, AgeThreshold: 1, Coefficient: 60}, table.Get(1))
	assert.Equal(t, card.CategoryCoefficient{Category: 7, AgeThreshold: 64, Coefficient: 10}, table.Get(7))

	_, err = ScoringConfig{}.Table()
	assert.Error(t, err)
}
