package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		from HijriDate
		n    int
		want HijriDate
	}{
		{HijriDate{10, 1, 1447}, 0, HijriDate{10, 1, 1447}},
		{HijriDate{10, 1, 1447}, 20, HijriDate{30, 1, 1447}},
		{HijriDate{10, 1, 1447}, 21, HijriDate{1, 2, 1447}},
		{HijriDate{10, 1, 1447}, 39, HijriDate{19, 2, 1447}},
		{HijriDate{10, 1, 1447}, 99, HijriDate{20, 4, 1447}},
		{HijriDate{29, 12, 1446}, 1, HijriDate{1, 1, 1447}},
		{HijriDate{29, 2, 1447}, 1, HijriDate{1, 3, 1447}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AddDays(tt.from, tt.n), "%v + %d", tt.from, tt.n)
	}
}

func TestTahlil(t *testing.T) {
	got, err := Tahlil(HijriDate{Day: 10, Month: 1, Year: 1447})
	require.NoError(t, err)

	want := []struct {
		name    string
		hijri   HijriDate
		date    string
		weekday string
		pasaran string
	}{
		{"1 Hari", HijriDate{10, 1, 1447}, "2025-07-06", "Minggu", "Wage"},
		{"3 Hari", HijriDate{12, 1, 1447}, "2025-07-08", "Selasa", "Legi"},
		{"7 Hari", HijriDate{16, 1, 1447}, "2025-07-12", "Sabtu", "Kliwon"},
		{"40 Hari", HijriDate{19, 2, 1447}, "2025-08-14", "Kamis", "Pon"},
		{"100 Hari", HijriDate{20, 4, 1447}, "2025-10-13", "Senin", "Pon"},
		{"Haul (1 Tahun)", HijriDate{10, 1, 1448}, "2026-06-26", "Jumat", "Wage"},
	}

	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, w.hijri, got[i].Hijri, w.name)
		assert.Equal(t, w.date, got[i].Gregorian.Format("2006-01-02"), w.name)
		assert.Equal(t, w.weekday, got[i].Weekday, w.name)
		assert.Equal(t, w.pasaran, got[i].Pasaran, w.name)
	}
}

func TestTahlil_Invalid(t *testing.T) {
	_, err := Tahlil(HijriDate{Day: 1, Month: 14, Year: 1447})
	assert.ErrorIs(t, err, ErrInvalidHijriDate)
}
