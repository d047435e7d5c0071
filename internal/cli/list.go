package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [days]",
		Short: "Show prayer times for multiple days",
		Long:  "Display a grid of prayer times for N days (default: 7), starting today or at --date.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, 7)
		},
	}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show prayer times for the next 7 days",
		Long:  "Alias for 'list 7'. Display a grid of prayer times for 7 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 7)
		},
	}
}

func newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show prayer times for the next 30 days",
		Long:  "Alias for 'list 30'. Display a grid of prayer times for 30 days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, nil, 30)
		},
	}
}

// dayData holds a single day's schedule for list/query output.
type dayData struct {
	Date    time.Time
	Hijri   calendar.HijriDate
	Prayers []prayer.Prayer
}

// runList is the handler for the list subcommand.
func runList(cmd *cobra.Command, args []string, defaultDays int) error {
	days := defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid number of days: %q (must be a positive integer)", args[0])
		}
		days = n
	}

	cfg := effectiveConfig(cmd)
	selected := selectedPrayers(cfg.Prayers)
	goTimeFmt := goTimeFormat(cfg)

	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	daysList, err := computeDays(site, days, selected)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return printListJSON(w, daysList, site, goTimeFmt)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("Jadwal Sholat %d Hari", days))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s (%s)\n", site.Label, site.Location())
	fmt.Fprintln(w)

	headers := []string{"Tanggal", "Hijriyah"}
	headers = append(headers, selected...)
	tbl := display.NewTable(headers)

	for i, dd := range daysList {
		row := []string{dayLabel(dd.Date), shortHijri(dd.Hijri)}
		for _, p := range dd.Prayers {
			row = append(row, p.Time.Format(goTimeFmt))
		}
		tbl.AddRow(row)

		if isToday(dd.Date, site.Location()) {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(w, tbl.Render())
	fmt.Fprintln(w)
	return nil
}

// computeDays computes the schedule for `days` consecutive days starting
// at the target date.
func computeDays(site resolvedSite, days int, selected []string) ([]dayData, error) {
	loc := site.Location()
	start, err := targetDate(loc)
	if err != nil {
		return nil, err
	}

	result := make([]dayData, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		sched, err := prayer.Compute(d, site.Site)
		if err != nil {
			return nil, err
		}
		prayers, err := sched.Prayers(d, loc, selected)
		if err != nil {
			return nil, err
		}
		result = append(result, dayData{Date: d, Hijri: calendar.Anchored(d), Prayers: prayers})
	}
	return result, nil
}

// dayLabel renders e.g. "Rabu Pon 01/01".
func dayLabel(d time.Time) string {
	return fmt.Sprintf("%-6s %-6s %02d/%02d", calendar.WeekdayOf(d), calendar.PasaranOf(d), d.Day(), d.Month())
}

// shortHijri renders e.g. "1/7/1446".
func shortHijri(h calendar.HijriDate) string {
	return fmt.Sprintf("%d/%d/%d", h.Day, h.Month, h.Year)
}

// listJSONOutput is the JSON structure for the list command.
type listJSONOutput struct {
	Location todayJSONLocation `json:"location"`
	Days     []listJSONDay     `json:"days"`
}

type listJSONDay struct {
	Date    string            `json:"date"`
	Weekday string            `json:"weekday"`
	Pasaran string            `json:"pasaran"`
	Hijri   string            `json:"hijri"`
	Timings map[string]string `json:"timings"`
}

func printListJSON(w io.Writer, daysList []dayData, site resolvedSite, goTimeFmt string) error {
	out := listJSONOutput{Location: siteJSON(site)}

	for _, dd := range daysList {
		timings := make(map[string]string)
		for _, p := range dd.Prayers {
			timings[strings.ToLower(p.Name)] = p.Time.Format(goTimeFmt)
		}

		out.Days = append(out.Days, listJSONDay{
			Date:    dd.Date.Format("2006-01-02"),
			Weekday: calendar.WeekdayOf(dd.Date),
			Pasaran: calendar.PasaranOf(dd.Date),
			Hijri:   dd.Hijri.String(),
			Timings: timings,
		})
	}

	return writeJSON(w, out)
}
