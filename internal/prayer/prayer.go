package prayer

import (
	"fmt"
	"strings"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/api"
)

// Prayer is a single labelled wall-clock time.
type Prayer struct {
	Name string
	Time time.Time
}

// AllPrayerNames lists every label of a schedule, in order.
var AllPrayerNames = []string{Imsak, Subuh, Terbit, Dhuha, Dzuhur, Ashar, Maghrib, Isya}

// DefaultPrayerNames are the times tracked by default.
var DefaultPrayerNames = []string{Imsak, Subuh, Terbit, Dzuhur, Ashar, Maghrib, Isya}

// ShortNames maps labels to short abbreviations for status lines.
var ShortNames = map[string]string{
	Imsak:   "Im",
	Subuh:   "S",
	Terbit:  "T",
	Dhuha:   "Dh",
	Dzuhur:  "D",
	Ashar:   "A",
	Maghrib: "M",
	Isya:    "I",
}

// aladhanNames maps labels to the Al Adhan timing they correspond to.
// Dhuha has no counterpart.
var aladhanNames = map[string]func(api.Timings) string{
	Imsak:   func(t api.Timings) string { return t.Imsak },
	Subuh:   func(t api.Timings) string { return t.Fajr },
	Terbit:  func(t api.Timings) string { return t.Sunrise },
	Dzuhur:  func(t api.Timings) string { return t.Dhuhr },
	Ashar:   func(t api.Timings) string { return t.Asr },
	Maghrib: func(t api.Timings) string { return t.Maghrib },
	Isya:    func(t api.Timings) string { return t.Isha },
}

// ParseTimings converts Al Adhan timings into Prayers for the given date,
// keeping only the selected labels.
func ParseTimings(timings api.Timings, date time.Time, loc *time.Location, selected []string) ([]Prayer, error) {
	var prayers []Prayer
	for _, name := range selected {
		get, ok := aladhanNames[name]
		if !ok {
			return nil, fmt.Errorf("no reference timing for %s", name)
		}
		raw := get(timings)

		t, err := parseTimeStr(raw, date, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time for %s (%q): %w", name, raw, err)
		}

		prayers = append(prayers, Prayer{Name: name, Time: t})
	}

	return prayers, nil
}

// NextPrayer returns the first prayer strictly after now, or nil when the
// day is over (the caller then looks at tomorrow's schedule).
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// CurrentPrayer returns the last prayer at or before now, or nil.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var cur *Prayer
	for i := range prayers {
		if prayers[i].Time.After(now) {
			break
		}
		cur = &prayers[i]
	}
	return cur
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// parseTimeStr parses "15:02" or "15:02 (WIB)" into a time on date in loc.
func parseTimeStr(raw string, date time.Time, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time format: %q", raw)
	}

	var hour, min int
	if _, err := fmt.Sscanf(parts[0], "%d", &hour); err != nil {
		return time.Time{}, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &min); err != nil {
		return time.Time{}, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, loc), nil
}
