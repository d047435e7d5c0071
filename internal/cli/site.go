package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/hisab/internal/cache"
	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/config"
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

// detectLocation is swapped out in tests.
var detectLocation = geo.DetectLocation

// resolvedSite is the observer together with a printable place name.
type resolvedSite struct {
	prayer.Site
	Label string
}

// openCache returns the cache, or nil when it cannot be created.
func openCache(cfg *config.Config) *cache.Cache {
	c, err := cache.New(cfg.CacheDir)
	if err != nil {
		log.Warn().Err(err).Msg("cache disabled")
		return nil
	}
	return c
}

// resolveSite builds the observer site from the merged config. In auto
// mode without coordinates the location comes from the geo cache or, on
// a miss, from IP geolocation.
// Priority: CLI flags > environment > config > cached geo > IP auto-detect.
func resolveSite(ctx context.Context, cfg *config.Config) (resolvedSite, error) {
	site, err := cfg.Site()
	if err != nil {
		return resolvedSite{}, err
	}
	rs := resolvedSite{Site: site}

	if cfg.NeedsDetection() {
		loc, err := detectedLocation(ctx, openCache(cfg))
		if err != nil {
			return resolvedSite{}, fmt.Errorf("location_mode is auto and detection failed: %w", err)
		}
		c := loc.Coordinate()
		rs.Coordinate = &c
		if cfg.Timezone == nil {
			rs.Timezone = loc.OffsetHours()
		}
		if loc.City != "" && loc.Country != "" {
			rs.Label = loc.City + ", " + loc.Country
		}
	}

	if rs.Coordinate == nil {
		return resolvedSite{}, fmt.Errorf("%w: set latitude and longitude, or use location_mode auto", prayer.ErrNoCoordinate)
	}
	if rs.Label == "" {
		rs.Label = fmt.Sprintf("%.4f, %.4f", rs.Coordinate.Latitude, rs.Coordinate.Longitude)
	}
	return rs, nil
}

// detectedLocation tries the cached geolocation first.
func detectedLocation(ctx context.Context, c *cache.Cache) (*geo.Location, error) {
	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			log.Debug().Str("city", cached.City).Msg("using cached geolocation")
			return cached, nil
		}
	}

	detected, err := detectLocation(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		if err := c.SaveGeo(detected); err != nil {
			log.Warn().Err(err).Msg("geo cache write failed")
		}
	}
	return detected, nil
}

// targetDate returns the --date flag or today at loc, as a civil date
// at UTC midnight.
func targetDate(loc *time.Location) (time.Time, error) {
	if FlagDate != "" {
		d, err := time.Parse("2006-01-02", FlagDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", FlagDate)
		}
		return d, nil
	}
	t := now().In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// isToday reports whether the civil date d is the current day at loc.
func isToday(d time.Time, loc *time.Location) bool {
	return d.Format("2006-01-02") == now().In(loc).Format("2006-01-02")
}

// selectedPrayers returns the configured prayer list, or the defaults.
func selectedPrayers(raw string) []string {
	if raw == "" {
		return prayer.DefaultPrayerNames
	}
	names := strings.Split(raw, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// gregorianLabel renders e.g. "Rabu Pon, 1 Januari 2025".
func gregorianLabel(d time.Time) string {
	return fmt.Sprintf("%s %s, %d %s %d",
		calendar.WeekdayOf(d), calendar.PasaranOf(d),
		d.Day(), calendar.GregorianMonthName(int(d.Month())), d.Year())
}

// arabicLabel renders a Hijri date with Arabic month name and digits.
func arabicLabel(h calendar.HijriDate) string {
	return calendar.ArabicDigits(fmt.Sprintf("%d %s %d", h.Day, calendar.HijriMonthsArabic[h.Month-1], h.Year))
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
