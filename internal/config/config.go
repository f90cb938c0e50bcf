package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/leitner"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Session  SessionConfig  `mapstructure:"session"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
}

type DatabaseConfig struct {
	Path         string `mapstructure:"path" validate:"required"`
	OpenAttempts uint   `mapstructure:"open_attempts" validate:"min=1"`
}

type SeedConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type SessionConfig struct {
	TotalSize     int    `mapstructure:"total_size" validate:"min=0"`
	ReviewPercent int    `mapstructure:"review_percent" validate:"min=0,max=100"`
	KnownPercent  int    `mapstructure:"known_percent" validate:"min=0,max=100"`
	HideInputHelp bool   `mapstructure:"hide_input_help"`
	FrontLanguage string `mapstructure:"front_language" validate:"required"`
	BackLanguage  string `mapstructure:"back_language" validate:"required"`
}

// Selection returns the sizing used by the session selector.
func (c SessionConfig) Selection() leitner.SessionConfig {
	return leitner.SessionConfig{
		TotalSize:     c.TotalSize,
		ReviewPercent: c.ReviewPercent,
		KnownPercent:  c.KnownPercent,
	}
}

type ScoringConfig struct {
	Coefficients []card.AgeCoefficient `mapstructure:"coefficients" validate:"len=7,dive"`
}

// Table builds the coefficient table stored alongside a new deck.
func (c ScoringConfig) Table() (card.CoefficientTable, error) {
	table, err := card.NewCoefficientTable(c.Coefficients)
	if err != nil {
		return table, fmt.Errorf("card.NewCoefficientTable() > %w", err)
	}
	return table, nil
}

// DefaultCoefficients is the (age, coefficient) curve of boxes 1 to 7.
func DefaultCoefficients() []card.AgeCoefficient {
	return []card.AgeCoefficient{
		{Age: 1, Coefficient: 60},
		{Age: 2, Coefficient: 40},
		{Age: 4, Coefficient: 28},
		{Age: 8, Coefficient: 20},
		{Age: 16, Coefficient: 15},
		{Age: 32, Coefficient: 12},
		{Age: 64, Coefficient: 10},
	}
}

// flagKeys maps command line flag names to the configuration keys they override.
var flagKeys = map[string]string{
	"db":        "database.path",
	"seed-file": "seed.file",
	"size":      "session.total_size",
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/leitner")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// BindFlags lets the known flags of flags override their configuration keys when they are set.
func (loader *ConfigLoader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := loader.viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s flag: %w", name, err)
		}
	}
	return nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.path", "leitner.db")
	v.SetDefault("database.open_attempts", 3)
	v.SetDefault("seed.file", "")
	v.SetDefault("session.total_size", 100)
	v.SetDefault("session.review_percent", 80)
	v.SetDefault("session.known_percent", 4)
	v.SetDefault("session.hide_input_help", true)
	v.SetDefault("session.front_language", card.LangFrench)
	v.SetDefault("session.back_language", card.LangEnglish)

	defaults := make([]map[string]any, 0, card.MaxBox)
	for _, c := range DefaultCoefficients() {
		defaults = append(defaults, map[string]any{"age": c.Age, "coefficient": c.Coefficient})
	}
	v.SetDefault("scoring.coefficients", defaults)

	if err := v.BindEnv("database.path", "LEITNER_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind LEITNER_DB_PATH environment variable: %w", err)
	}
	if err := v.BindEnv("seed.file", "LEITNER_SEED_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind LEITNER_SEED_FILE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
