package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokyabdulrahman/hisab/internal/config"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

func unset() options {
	return options{
		latitude:  nan,
		longitude: nan,
		timezone:  nan,
		ihtiyat:   nan,
		format:    prayer.FormatNameAndTime,
	}
}

// 08:00 UTC is 15:00 at the default UTC+7 site.
var afternoon = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func TestRun_DefaultSite(t *testing.T) {
	cfg := config.Defaults()
	var out bytes.Buffer

	require.NoError(t, run(&out, &cfg, unset(), afternoon))
	assert.Equal(t, "Ashar 15:22", out.String())
}

func TestRun_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{prayer.FormatTimeRemaining, "22m"},
		{prayer.FormatNextPrayerTime, "15:22"},
		{prayer.FormatShortNameAndTime, "A 15:22"},
		{prayer.FormatFull, "Ashar 15:22 (22m)"},
		{"{{.Name}} in {{.Minutes}}", "Ashar in 22"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := config.Defaults()
			o := unset()
			o.format = tt.format
			var out bytes.Buffer

			require.NoError(t, run(&out, &cfg, o, afternoon))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRun_TwelveHourAndPrayersFlag(t *testing.T) {
	cfg := config.Defaults()
	o := unset()
	o.timeFormat = "12h"
	o.prayers = "Maghrib, Isya"
	var out bytes.Buffer

	require.NoError(t, run(&out, &cfg, o, afternoon))
	assert.Equal(t, "Maghrib 6:10 PM", out.String())
}

func TestRun_ConfigPrayers(t *testing.T) {
	cfg := config.Defaults()
	cfg.Prayers = "Isya"
	var out bytes.Buffer

	require.NoError(t, run(&out, &cfg, unset(), afternoon))
	assert.Equal(t, "Isya 19:26", out.String())
}

func TestRun_RollsIntoTomorrow(t *testing.T) {
	cfg := config.Defaults()
	o := unset()
	o.prayers = "Subuh"
	var out bytes.Buffer

	// 20:00 local, Subuh is tomorrow.
	require.NoError(t, run(&out, &cfg, o, time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)))
	assert.Contains(t, out.String(), "Subuh 04:")
}

func TestRun_FlagOverrides(t *testing.T) {
	cfg := config.Defaults()
	o := unset()
	o.ihtiyat = 2
	o.prayers = "Maghrib"
	var out bytes.Buffer

	require.NoError(t, run(&out, &cfg, o, afternoon))
	assert.Equal(t, "Maghrib 18:12", out.String())
}

func TestRun_ManualModeWithoutCoordinate(t *testing.T) {
	cfg := config.Defaults()
	cfg.LocationMode = config.ModeManual
	var out bytes.Buffer

	err := run(&out, &cfg, unset(), afternoon)
	assert.True(t, errors.Is(err, prayer.ErrNoCoordinate), "got %v", err)
	assert.Empty(t, out.String())
}

func TestRun_UnknownPrayer(t *testing.T) {
	cfg := config.Defaults()
	o := unset()
	o.prayers = "Fajr"
	var out bytes.Buffer

	assert.Error(t, run(&out, &cfg, o, afternoon))
}
