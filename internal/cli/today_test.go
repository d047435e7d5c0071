package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

func testSite() resolvedSite {
	return resolvedSite{
		Site: prayer.Site{
			Coordinate:   &geo.Coordinate{Latitude: -6.786, Longitude: 107.173},
			Timezone:     7,
			UseElevation: true,
			Horizon:      prayer.HorizonStandard,
		},
		Label: "Cianjur",
	}
}

func withNow(t *testing.T, ts time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = orig })
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Isya   ", padRight("Isya", 7))
	assert.Equal(t, "Maghrib", padRight("Maghrib", 7))
	assert.Equal(t, "Maghrib", padRight("Maghrib", 3))
}

func TestGregorianLabel(t *testing.T) {
	assert.Equal(t, "Rabu Pon, 1 Januari 2025", gregorianLabel(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Jumat Kliwon, 27 Juni 2025", gregorianLabel(time.Date(2025, 6, 27, 0, 0, 0, 0, time.UTC)))
}

func TestArabicLabel(t *testing.T) {
	got := arabicLabel(calendar.HijriDate{Day: 1, Month: 9, Year: 1446})
	assert.Equal(t, "١ رمضان ١٤٤٦", got)
}

func TestDayLabelAndShortHijri(t *testing.T) {
	assert.Equal(t, "Kamis  Wage   02/01", dayLabel(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1/7/1446", shortHijri(calendar.HijriDate{Day: 1, Month: 7, Year: 1446}))
}

func TestSelectedPrayers(t *testing.T) {
	assert.Equal(t, prayer.DefaultPrayerNames, selectedPrayers(""))
	assert.Equal(t, []string{"Subuh", "Maghrib"}, selectedPrayers(" Subuh , Maghrib"))
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"week", 7, false},
		{"month", 30, false},
		{"14", 14, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"fortnight", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseDays(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDMY(t *testing.T) {
	d, m, y, err := parseDMY([]string{"10", "1", "1447"})
	require.NoError(t, err)
	assert.Equal(t, [3]int{10, 1, 1447}, [3]int{d, m, y})

	_, _, _, err = parseDMY([]string{"10", "Muharram", "1447"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid month")
}

func TestTargetDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 20:00 UTC on the 1st is already the 2nd at UTC+7.
	withNow(t, time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC))

	FlagDate = ""
	got, err := targetDate(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, isToday(got, loc))

	FlagDate = "2025-03-01"
	t.Cleanup(func() { FlagDate = "" })
	got, err = targetDate(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)
	assert.False(t, isToday(got, loc))
}

func TestFindNext_SameDay(t *testing.T) {
	withNow(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	next, err := findNext(testSite(), prayer.DefaultPrayerNames)
	require.NoError(t, err)
	assert.Equal(t, prayer.Ashar, next.Name)
	assert.Equal(t, "2025-01-01 15:22", next.Time.Format("2006-01-02 15:04"))
}

func TestFindNext_Tomorrow(t *testing.T) {
	withNow(t, time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC))

	next, err := findNext(testSite(), []string{prayer.Subuh})
	require.NoError(t, err)
	assert.Equal(t, prayer.Subuh, next.Name)
	assert.Equal(t, 2, next.Time.Day())
}

func TestFindNext_UnknownName(t *testing.T) {
	withNow(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))

	_, err := findNext(testSite(), []string{"Fajr"})
	assert.Error(t, err)
}

func TestCurrentAndNextAreAdjacent(t *testing.T) {
	site := testSite()
	loc := site.Location()
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	sched, err := prayer.Compute(date, site.Site)
	require.NoError(t, err)
	prayers, err := sched.Prayers(date, loc, prayer.DefaultPrayerNames)
	require.NoError(t, err)

	for h := 0; h < 24; h++ {
		ts := time.Date(2025, 1, 1, h, 30, 0, 0, loc)
		cur := prayer.CurrentPrayer(prayers, ts)
		next := prayer.NextPrayer(prayers, ts)
		switch {
		case cur == nil:
			require.NotNil(t, next)
			assert.Equal(t, prayers[0].Name, next.Name)
		case next == nil:
			assert.Equal(t, prayers[len(prayers)-1].Name, cur.Name)
		default:
			assert.True(t, cur.Time.Before(next.Time))
		}
	}
}
