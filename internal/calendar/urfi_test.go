package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// HijriToGregorian
// ---------------------------------------------------------------------------

func TestHijriToGregorian(t *testing.T) {
	tests := []struct {
		hijri   HijriDate
		date    string
		weekday string
		pasaran string
	}{
		{HijriDate{1, 1, 1447}, "2025-06-27", "Jumat", "Kliwon"},
		{HijriDate{1, 9, 1447}, "2026-02-18", "Rabu", "Legi"},
		{HijriDate{1, 7, 1446}, "2025-01-01", "Rabu", "Pon"},
		{HijriDate{10, 12, 1446}, "2025-06-07", "Sabtu", "Kliwon"},
		{HijriDate{1, 1, 1448}, "2026-06-17", "Rabu", "Kliwon"},
		{HijriDate{1, 10, 1447}, "2026-03-20", "Jumat", "Legi"},
		{HijriDate{15, 3, 1450}, "2028-08-06", "Minggu", "Legi"},
	}

	for _, tt := range tests {
		t.Run(tt.hijri.String(), func(t *testing.T) {
			c, err := HijriToGregorian(tt.hijri)
			require.NoError(t, err)
			assert.Equal(t, tt.date, c.Date.Format("2006-01-02"))
			assert.Equal(t, tt.weekday, c.Weekday)
			assert.Equal(t, tt.pasaran, c.Pasaran)
			assert.False(t, c.DayZeroAdjusted)
		})
	}
}

func TestHijriToGregorian_Intermediates(t *testing.T) {
	c, err := HijriToGregorian(HijriDate{Day: 1, Month: 1, Year: 1447})
	require.NoError(t, err)

	assert.Equal(t, 1446, c.YearsElapsed)
	assert.Equal(t, 48, c.Cycles)
	assert.Equal(t, 6, c.YearInCycle)
	assert.Equal(t, 510288, c.CycleDays)
	assert.Equal(t, 2124, c.YearDays)
	assert.Equal(t, 2, c.LeapDays)
	assert.Equal(t, 0, c.MonthDays)
	assert.Equal(t, 512415, c.HijriDayCount)
	assert.Equal(t, 739429, c.EpochDayCount)
	assert.Equal(t, 2024, c.WholeYears)
	assert.InDelta(t, 0.4878, c.YearFraction, 1e-3)
	assert.Equal(t, 178, c.DayOfYear)
	assert.Equal(t, 2025, c.GregorianYear)
	assert.Equal(t, 6, c.GregorianMonth)
	assert.Equal(t, 151, c.MonthStart)
	assert.Equal(t, 27, c.DayOfMonth)
	assert.Equal(t, 512415%7, c.WeekdayIndex)
	assert.Equal(t, 512415%5, c.PasaranIndex)
}

func TestHijriToGregorian_FirstDayOfYear(t *testing.T) {
	c, err := HijriToGregorian(HijriDate{Day: 1, Month: 7, Year: 1446})
	require.NoError(t, err)
	assert.Equal(t, 512238, c.HijriDayCount)
	assert.Equal(t, 1, c.DayOfYear)
	assert.Equal(t, 1, c.GregorianMonth)
	assert.Equal(t, 1, c.DayOfMonth)
}

func TestHijriToGregorian_DayZero(t *testing.T) {
	tests := []struct {
		hijri HijriDate
		date  string
	}{
		{HijriDate{1, 4, 1438}, "2016-12-31"},
		{HijriDate{1, 1, 1497}, "2073-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.hijri.String(), func(t *testing.T) {
			c, err := HijriToGregorian(tt.hijri)
			require.NoError(t, err)
			assert.Equal(t, 0, c.DayOfYear)
			assert.Equal(t, 0, c.DayOfMonth)
			assert.True(t, c.DayZeroAdjusted)
			assert.Equal(t, tt.date, c.Date.Format("2006-01-02"))
		})
	}
}

func TestHijriToGregorian_Invalid(t *testing.T) {
	for _, h := range []HijriDate{{0, 1, 1447}, {31, 1, 1447}, {1, 0, 1447}, {1, 13, 1447}, {1, 1, 0}} {
		_, err := HijriToGregorian(h)
		assert.True(t, errors.Is(err, ErrInvalidHijriDate), "%+v", h)
	}
}

// ---------------------------------------------------------------------------
// GregorianToHijri
// ---------------------------------------------------------------------------

func TestGregorianToHijri(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    HijriDate
	}{
		{2025, 1, 1, HijriDate{2, 7, 1446}},
		{2025, 7, 20, HijriDate{24, 1, 1447}},
		{2026, 3, 1, HijriDate{12, 9, 1447}},
		{2026, 10, 18, HijriDate{7, 5, 1448}},
		{1945, 8, 17, HijriDate{9, 9, 1364}},
		{2000, 1, 1, HijriDate{24, 9, 1420}},
		{2024, 2, 29, HijriDate{19, 8, 1445}},
		{2019, 8, 31, HijriDate{30, 12, 1440}},
		{1990, 7, 23, HijriDate{30, 12, 1410}},
		{2048, 10, 8, HijriDate{30, 12, 1470}},
	}

	for _, tt := range tests {
		c, err := GregorianToHijri(tt.y, tt.m, tt.d)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.Hijri, "%04d-%02d-%02d", tt.y, tt.m, tt.d)
	}
}

func TestGregorianToHijri_Intermediates(t *testing.T) {
	c, err := GregorianToHijri(2025, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, c.A)
	assert.Equal(t, 6824, c.Y)
	assert.Equal(t, 10, c.M)
	assert.Equal(t, 2460677, c.JDN)
	assert.Equal(t, 512238, c.EpochDays)
	assert.Equal(t, 48, c.Cycles)
	assert.Equal(t, 1950, c.CycleRest)
	assert.Equal(t, 5, c.YearInCycle)
	assert.Equal(t, 1, c.LeapDays)
	assert.Equal(t, 178, c.DayOfYear)
}

func TestGregorianToHijri_CycleEnd(t *testing.T) {
	for k := 1; k <= 60; k++ {
		y, m, d := FromJDN(urfiJDNEpoch + urfiCycleDays*k)
		c, err := GregorianToHijri(y, m, d)
		require.NoError(t, err)

		assert.True(t, c.CycleEnd, "%04d-%02d-%02d", y, m, d)
		assert.Zero(t, c.CycleRest)
		assert.Equal(t, HijriDate{Day: 30, Month: 12, Year: 30 * k}, c.Hijri, "%04d-%02d-%02d", y, m, d)
		assert.NoError(t, c.Hijri.Validate())
	}

	c, err := GregorianToHijri(2019, 9, 1)
	require.NoError(t, err)
	assert.False(t, c.CycleEnd)
	assert.Equal(t, HijriDate{1, 1, 1441}, c.Hijri)
}

func TestGregorianToHijri_BeforeEpoch(t *testing.T) {
	_, err := GregorianToHijri(622, 7, 18)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = GregorianToHijri(600, 1, 1)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	c, err := GregorianToHijri(622, 7, 19)
	require.NoError(t, err)
	assert.Equal(t, HijriDate{1, 1, 1}, c.Hijri)
}

func TestGregorianToHijri_InvalidDate(t *testing.T) {
	_, err := GregorianToHijri(2025, 2, 30)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = GregorianToHijri(2025, 13, 1)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}
