package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/leitner/internal/card"
	"github.com/at-ishikawa/leitner/internal/config"
)

func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	if flags != nil {
		if err := loader.BindFlags(flags); err != nil {
			return nil, err
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// dayFlag is a --date value. It defaults to today when not set.
type dayFlag struct {
	day card.DayStamp
	set bool
}

var _ pflag.Value = (*dayFlag)(nil)

func (f *dayFlag) String() string {
	if !f.set {
		return ""
	}
	return f.day.String()
}

func (f *dayFlag) Set(value string) error {
	day, err := card.ParseDayStamp(value)
	if err != nil {
		return err
	}
	f.day = day
	f.set = true
	return nil
}

func (f *dayFlag) Type() string {
	return "date"
}

// Day returns the parsed day or today when the flag was not given.
func (f *dayFlag) Day() card.DayStamp {
	if !f.set {
		return card.Today()
	}
	return f.day
}
