package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/leitner/internal/card"
)

func TestDayFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    card.DayStamp
		wantErr bool
	}{
		{
			name:  "date",
			value: "2024-03-06",
			want:  19788,
		},
		{
			name:  "date time",
			value: "2024-03-06T23:59:59",
			want:  19788,
		},
		{
			name:    "not a date",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f dayFlag
			err := f.Set(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, card.ErrInvalidDate)
				assert.Equal(t, "", f.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Day())
			assert.Equal(t, "2024-03-06", f.String())
		})
	}
}

func TestDayFlag_DefaultsToToday(t *testing.T) {
	var f dayFlag
	assert.Equal(t, "date", f.Type())
	assert.Equal(t, "", f.String())
	assert.InDelta(t, int64(card.Today()), int64(f.Day()), 1)
}

func TestLoadConfig(t *testing.T) {
	t.Run("broken config", func(t *testing.T) {
		oldConfigFile := configFile
		t.Cleanup(func() { configFile = oldConfigFile })
		configFile = setupBrokenConfigFile(t)

		_, err := loadConfig(nil)
		assert.ErrorContains(t, err, "configuration")
	})

	t.Run("config without seed", func(t *testing.T) {
		oldConfigFile := configFile
		t.Cleanup(func() { configFile = oldConfigFile })
		configFile = setupConfigWithoutSeed(t, t.TempDir())

		cfg, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Seed.File)
		assert.Equal(t, 100, cfg.Session.TotalSize)
	})
}
