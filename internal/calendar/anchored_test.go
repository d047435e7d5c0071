package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// MonthLength
// ---------------------------------------------------------------------------

func TestMonthLength(t *testing.T) {
	tests := []struct {
		year, month int
		want        int
	}{
		{1446, 11, 29},
		{1447, 6, 30},
		{1447, 9, 29},
		{1448, 3, 29},
		{1449, 1, 30},
		{1449, 2, 29},
		{1449, 12, 29},
		{1440, 12, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthLength(tt.year, tt.month), "%d/%d", tt.month, tt.year)
	}
}

// ---------------------------------------------------------------------------
// Anchored
// ---------------------------------------------------------------------------

func TestAnchored(t *testing.T) {
	tests := []struct {
		date time.Time
		want HijriDate
	}{
		{civil(2025, 1, 1), HijriDate{1, 7, 1446}},
		{civil(2025, 1, 31), HijriDate{1, 8, 1446}},
		{civil(2025, 6, 26), HijriDate{1, 1, 1447}},
		{civil(2025, 6, 27), HijriDate{2, 1, 1447}},
		{civil(2026, 2, 18), HijriDate{30, 8, 1447}},
		{civil(2026, 2, 19), HijriDate{1, 9, 1447}},
		{civil(2026, 10, 18), HijriDate{7, 5, 1448}},
		{civil(2028, 1, 1), HijriDate{3, 8, 1449}},
		{civil(2024, 12, 31), HijriDate{29, 6, 1446}},
		{civil(2024, 12, 1), HijriDate{29, 5, 1446}},
		{civil(2024, 1, 1), HijriDate{18, 6, 1445}},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, Anchored(tt.date))
		})
	}
}

func TestAnchored_ConsecutiveDays(t *testing.T) {
	prev := Anchored(civil(2023, 12, 31))
	for d := civil(2024, 1, 1); d.Year() < 2029; d = d.AddDate(0, 0, 1) {
		h := Anchored(d)
		if h.Day == 1 {
			assert.Equal(t, MonthLength(prev.Year, prev.Month), prev.Day, "month before %s", d.Format("2006-01-02"))
		} else {
			assert.Equal(t, prev.Day+1, h.Day, d.Format("2006-01-02"))
			assert.Equal(t, prev.Month, h.Month)
		}
		prev = h
	}
}

// ---------------------------------------------------------------------------
// Month grid
// ---------------------------------------------------------------------------

func TestMonth(t *testing.T) {
	g, err := Month(2025, 1)
	require.NoError(t, err)

	assert.Equal(t, "Januari", g.Name)
	assert.Equal(t, 3, g.Offset)
	require.Len(t, g.Days, 31)
	assert.Equal(t, Day{
		Date: civil(2025, 1, 1), Day: 1, Weekday: "Rabu", Pasaran: "Pon",
		Hijri: HijriDate{1, 7, 1446},
	}, g.Days[0])
	assert.Equal(t, HijriDate{1, 8, 1446}, g.Days[30].Hijri)
	assert.Equal(t, "Rajab - Sya'ban 1446", g.HijriSpan())
}

func TestMonth_LeapFebruary(t *testing.T) {
	g, err := Month(2028, 2)
	require.NoError(t, err)
	assert.Len(t, g.Days, 29)
}

func TestMonth_SpanAcrossYears(t *testing.T) {
	g, err := Month(2025, 6)
	require.NoError(t, err)
	assert.Equal(t, "Dzulhijjah 1446 - Muharram 1447", g.HijriSpan())
}

func TestMonth_Invalid(t *testing.T) {
	_, err := Month(2025, 0)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}
