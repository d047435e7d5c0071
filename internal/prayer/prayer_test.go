package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokyabdulrahman/hisab/internal/api"
)

var wib = time.FixedZone("WIB", 7*3600)

func at(h, m int) time.Time {
	return time.Date(2025, 1, 1, h, m, 0, 0, wib)
}

// Al Adhan KEMENAG timings for the default site on 2025-01-01.
func referenceTimings() api.Timings {
	return api.Timings{
		Imsak:   "04:02 (WIB)",
		Fajr:    "04:12 (WIB)",
		Sunrise: "05:39 (WIB)",
		Dhuhr:   "11:55 (WIB)",
		Asr:     "15:22 (WIB)",
		Maghrib: "18:11 (WIB)",
		Isha:    "19:25 (WIB)",
	}
}

func hm(p Prayer) string { return p.Time.Format("15:04") }

func TestParseTimeStr(t *testing.T) {
	date := at(0, 0)

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "04:12", want: "04:12"},
		{raw: "00:00", want: "00:00"},
		{raw: "19:25 (WIB)", want: "19:25"},
		{raw: "  05:39   (WITA) ", want: "05:39"},
		{raw: "", wantErr: true},
		{raw: "Subuh", wantErr: true},
		{raw: "04:", wantErr: true},
		{raw: "ab:cd", wantErr: true},
		{raw: "04:12:30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseTimeStr(tt.raw, date, wib)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("15:04"))
			assert.Equal(t, "2025-01-01", got.Format("2006-01-02"))
			assert.Equal(t, wib, got.Location())
		})
	}
}

func TestParseTimings(t *testing.T) {
	prayers, err := ParseTimings(referenceTimings(), at(0, 0), wib, DefaultPrayerNames)
	require.NoError(t, err)
	require.Len(t, prayers, len(DefaultPrayerNames))

	want := []string{"04:02", "04:12", "05:39", "11:55", "15:22", "18:11", "19:25"}
	for i, p := range prayers {
		assert.Equal(t, DefaultPrayerNames[i], p.Name)
		assert.Equal(t, want[i], hm(p), p.Name)
	}
}

func TestParseTimings_KeepsSelectionOrder(t *testing.T) {
	prayers, err := ParseTimings(referenceTimings(), at(0, 0), wib, []string{Isya, Subuh})
	require.NoError(t, err)
	require.Len(t, prayers, 2)
	assert.Equal(t, Isya, prayers[0].Name)
	assert.Equal(t, Subuh, prayers[1].Name)
}

func TestParseTimings_Errors(t *testing.T) {
	broken := referenceTimings()
	broken.Asr = "soon"

	tests := []struct {
		name     string
		timings  api.Timings
		selected []string
	}{
		{"dhuha has no counterpart", referenceTimings(), []string{Dhuha}},
		{"unknown label", referenceTimings(), []string{"Tahajjud"}},
		{"malformed time", broken, []string{Ashar}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimings(tt.timings, at(0, 0), wib, tt.selected)
			assert.Error(t, err)
		})
	}
}

func TestNextAndCurrentPrayer(t *testing.T) {
	prayers, err := ParseTimings(referenceTimings(), at(0, 0), wib, DefaultPrayerNames)
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		current string
		next    string
	}{
		{"before imsak", at(3, 0), "", Imsak},
		{"between subuh and terbit", at(5, 0), Subuh, Terbit},
		{"exactly dzuhur", at(11, 55), Dzuhur, Ashar},
		{"afternoon", at(15, 0), Dzuhur, Ashar},
		{"after isya", at(21, 0), Isya, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := CurrentPrayer(prayers, tt.now)
			next := NextPrayer(prayers, tt.now)
			if tt.current == "" {
				assert.Nil(t, cur)
			} else {
				require.NotNil(t, cur)
				assert.Equal(t, tt.current, cur.Name)
			}
			if tt.next == "" {
				assert.Nil(t, next)
			} else {
				require.NotNil(t, next)
				assert.Equal(t, tt.next, next.Name)
			}
		})
	}

	assert.Nil(t, NextPrayer(nil, at(12, 0)))
	assert.Nil(t, CurrentPrayer(nil, at(12, 0)))
}

func TestNextPrayer_ComputedSchedule(t *testing.T) {
	s, err := Compute(day(2025, 1, 1), defaultSite())
	require.NoError(t, err)
	site := defaultSite()
	prayers, err := s.Prayers(day(2025, 1, 1), site.Location(), DefaultPrayerNames)
	require.NoError(t, err)

	next := NextPrayer(prayers, time.Date(2025, 1, 1, 15, 0, 0, 0, site.Location()))
	require.NotNil(t, next)
	assert.Equal(t, Ashar, next.Name)
	assert.Equal(t, "15:22", hm(*next))
}

func TestTimeRemaining(t *testing.T) {
	ashar := Prayer{Name: Ashar, Time: at(15, 22)}

	assert.Equal(t, 22*time.Minute, TimeRemaining(ashar, at(15, 0)))
	assert.Equal(t, 3*time.Hour+27*time.Minute, TimeRemaining(ashar, at(11, 55)))
	assert.Negative(t, TimeRemaining(ashar, at(18, 11)))
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{22 * time.Minute, "22m"},
		{3*time.Hour + 27*time.Minute, "3h 27m"},
		{time.Hour, "1h 0m"},
		{59*time.Minute + 59*time.Second, "59m"},
		{0, "0m"},
		{-5 * time.Minute, "0m"},
		{13*time.Hour + 1*time.Minute, "13h 1m"},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.d))
		})
	}
}

func TestShortNames(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range AllPrayerNames {
		short, ok := ShortNames[name]
		require.True(t, ok, "no short name for %s", name)
		if other, dup := seen[short]; dup {
			t.Errorf("%s and %s share short name %q", name, other, short)
		}
		seen[short] = name
	}
	assert.Subset(t, AllPrayerNames, DefaultPrayerNames)
}
