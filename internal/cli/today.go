package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

func runToday(cmd *cobra.Command, args []string) error {
	// Get merged config (CLI flags > environment > config file > defaults).
	cfg := effectiveConfig(cmd)
	selected := selectedPrayers(cfg.Prayers)
	goTimeFmt := goTimeFormat(cfg)

	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	loc := site.Location()

	date, err := targetDate(loc)
	if err != nil {
		return err
	}

	sched, err := prayer.Compute(date, site.Site)
	if err != nil {
		return err
	}
	prayers, err := sched.Prayers(date, loc, selected)
	if err != nil {
		return err
	}

	// Current and next only make sense for today.
	var current, next *prayer.Prayer
	t := now().In(loc)
	if isToday(date, loc) {
		current = prayer.CurrentPrayer(prayers, t)
		next = prayer.NextPrayer(prayers, t)
	}

	hijri := calendar.Anchored(date)

	if FlagJSON {
		return printTodayJSON(cmd.OutOrStdout(), prayers, current, next, t, date, hijri, site, goTimeFmt)
	}

	printTodayRich(cmd.OutOrStdout(), prayers, current, next, t, date, hijri, site, goTimeFmt)
	return nil
}

// printTodayRich renders the colored terminal output for one day's schedule.
func printTodayRich(w io.Writer, prayers []prayer.Prayer, current, next *prayer.Prayer, t, date time.Time, hijri calendar.HijriDate, site resolvedSite, goTimeFmt string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Jadwal Sholat"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s\n", site.Label)
	fmt.Fprintf(w, "  %s\n", site.Location())
	fmt.Fprintf(w, "  %s\n", gregorianLabel(date))
	fmt.Fprintf(w, "  %s H  %s\n", hijri, display.Gray(arabicLabel(hijri)))
	fmt.Fprintln(w)

	// Find the max prayer name length for alignment.
	maxNameLen := 0
	for _, p := range prayers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	for _, p := range prayers {
		line := fmt.Sprintf("  %s  %s", padRight(p.Name, maxNameLen), p.Time.Format(goTimeFmt))

		switch {
		case current != nil && p.Name == current.Name:
			fmt.Fprintln(w, display.Dim(line))
		case next != nil && p.Name == next.Name:
			remaining := prayer.FormatRemaining(prayer.TimeRemaining(p, t))
			fmt.Fprintln(w, display.Accent(line)+display.Accent(fmt.Sprintf("  <- %s lagi", remaining)))
		default:
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintln(w)
}

// padRight pads a string to the given width with spaces.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// todayJSON is the JSON output structure for the root command.
type todayJSON struct {
	Location todayJSONLocation `json:"location"`
	Date     todayJSONDate     `json:"date"`
	Timings  map[string]string `json:"timings"`
	Current  string            `json:"current,omitempty"`
	Next     *todayJSONNext    `json:"next,omitempty"`
}

type todayJSONLocation struct {
	Label     string  `json:"label"`
	Timezone  float64 `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

type todayJSONDate struct {
	Gregorian string `json:"gregorian"`
	Weekday   string `json:"weekday"`
	Pasaran   string `json:"pasaran"`
	Hijri     string `json:"hijri"`
}

type todayJSONNext struct {
	Prayer    string `json:"prayer"`
	Time      string `json:"time"`
	Remaining string `json:"remaining"`
}

func siteJSON(site resolvedSite) todayJSONLocation {
	return todayJSONLocation{
		Label:     site.Label,
		Timezone:  site.Timezone,
		Latitude:  site.Coordinate.Latitude,
		Longitude: site.Coordinate.Longitude,
		Elevation: site.Elevation,
	}
}

// printTodayJSON renders structured JSON output.
func printTodayJSON(w io.Writer, prayers []prayer.Prayer, current, next *prayer.Prayer, t, date time.Time, hijri calendar.HijriDate, site resolvedSite, goTimeFmt string) error {
	timings := make(map[string]string)
	for _, p := range prayers {
		timings[strings.ToLower(p.Name)] = p.Time.Format(goTimeFmt)
	}

	out := todayJSON{
		Location: siteJSON(site),
		Date: todayJSONDate{
			Gregorian: date.Format("2006-01-02"),
			Weekday:   calendar.WeekdayOf(date),
			Pasaran:   calendar.PasaranOf(date),
			Hijri:     hijri.String(),
		},
		Timings: timings,
	}

	if current != nil {
		out.Current = strings.ToLower(current.Name)
	}
	if next != nil {
		out.Next = &todayJSONNext{
			Prayer:    strings.ToLower(next.Name),
			Time:      next.Time.Format(goTimeFmt),
			Remaining: prayer.FormatRemaining(prayer.TimeRemaining(*next, t)),
		}
	}

	return writeJSON(w, out)
}
