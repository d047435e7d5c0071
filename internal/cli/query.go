package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

var flagQueryDays string

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <prayer>",
		Short: "Query a specific prayer time",
		Long: "Query a specific prayer time for today, or across multiple days with --days.\n\nValid prayer names: " +
			strings.Join(prayer.AllPrayerNames, ", "),
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().StringVar(&flagQueryDays, "days", "", "Number of days to show (or 'week'/'month')")

	return cmd
}

// parseDays reads the --days value.
func parseDays(raw string) (int, error) {
	switch raw {
	case "":
		return 1, nil
	case "week":
		return 7, nil
	case "month":
		return 30, nil
	}
	var days int
	n, err := fmt.Sscanf(raw, "%d", &days)
	if err != nil || n != 1 || days < 1 {
		return 0, fmt.Errorf("invalid --days value %q: must be a positive integer, 'week', or 'month'", raw)
	}
	return days, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	prayerName := ""
	for _, name := range prayer.AllPrayerNames {
		if strings.EqualFold(name, args[0]) {
			prayerName = name // normalize case
			break
		}
	}
	if prayerName == "" {
		return fmt.Errorf("unknown prayer %q; valid names: %s", args[0], strings.Join(prayer.AllPrayerNames, ", "))
	}

	days, err := parseDays(flagQueryDays)
	if err != nil {
		return err
	}

	cfg := effectiveConfig(cmd)
	goTimeFmt := goTimeFormat(cfg)

	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	daysList, err := computeDays(site, days, []string{prayerName})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if days == 1 {
		dd := daysList[0]
		timeStr := dd.Prayers[0].Time.Format(goTimeFmt)
		if FlagJSON {
			return writeJSON(w, queryJSONDay{
				Prayer: strings.ToLower(prayerName),
				Date:   dd.Date.Format("2006-01-02"),
				Hijri:  dd.Hijri.String(),
				Time:   timeStr,
			})
		}
		fmt.Fprintf(w, "%s %s\n", prayerName, timeStr)
		return nil
	}

	if FlagJSON {
		out := queryJSONMulti{Location: siteJSON(site), Prayer: strings.ToLower(prayerName)}
		for _, dd := range daysList {
			out.Days = append(out.Days, queryJSONDay{
				Date:  dd.Date.Format("2006-01-02"),
				Hijri: dd.Hijri.String(),
				Time:  dd.Prayers[0].Time.Format(goTimeFmt),
			})
		}
		return writeJSON(w, out)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("%s, %d Hari", prayerName, days))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s (%s)\n", site.Label, site.Location())
	fmt.Fprintln(w)

	tbl := display.NewTable([]string{"Tanggal", "Hijriyah", prayerName})
	for i, dd := range daysList {
		tbl.AddRow([]string{dayLabel(dd.Date), shortHijri(dd.Hijri), dd.Prayers[0].Time.Format(goTimeFmt)})
		if isToday(dd.Date, site.Location()) {
			tbl.SetHighlightRow(i)
		}
	}

	fmt.Fprint(w, tbl.Render())
	fmt.Fprintln(w)
	return nil
}

type queryJSONMulti struct {
	Location todayJSONLocation `json:"location"`
	Prayer   string            `json:"prayer"`
	Days     []queryJSONDay    `json:"days"`
}

type queryJSONDay struct {
	Prayer string `json:"prayer,omitempty"`
	Date   string `json:"date"`
	Hijri  string `json:"hijri"`
	Time   string `json:"time"`
}
