package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/api"
	"github.com/smokyabdulrahman/hisab/internal/cache"
	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

// newAPIClient is swapped out in tests.
var newAPIClient = api.NewClient

var flagMethod int

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the local schedule with Al Adhan",
		Long:  "Fetch the Al Adhan timings for the same day and place and print them next to the\nlocally computed schedule, with the difference in minutes. Responses are cached.",
		Args:  cobra.NoArgs,
		RunE:  runCompare,
	}
	cmd.Flags().IntVar(&flagMethod, "method", api.MethodKemenag, "Al Adhan calculation method id")
	return cmd
}

// comparison is one row of the compare output.
type comparison struct {
	Name      string `json:"name"`
	Local     string `json:"local"`
	Reference string `json:"reference"`
	Minutes   int    `json:"diff_minutes"`
}

// referenceNames are the labels Al Adhan has a counterpart for.
var referenceNames = []string{prayer.Imsak, prayer.Subuh, prayer.Terbit, prayer.Dzuhur, prayer.Ashar, prayer.Maghrib, prayer.Isya}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
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
	local, err := sched.Prayers(date, loc, referenceNames)
	if err != nil {
		return err
	}

	q := api.Query{Date: date, Coordinate: *site.Coordinate, Method: flagMethod, School: 0}
	resp, err := fetchReference(cmd, openCache(cfg), q)
	if err != nil {
		return err
	}
	ref, err := prayer.ParseTimings(resp.Data.Timings, date, loc, referenceNames)
	if err != nil {
		return err
	}

	rows := make([]comparison, len(local))
	for i := range local {
		rows[i] = comparison{
			Name:      local[i].Name,
			Local:     local[i].Time.Format("15:04"),
			Reference: ref[i].Time.Format("15:04"),
			Minutes:   int(math.Round(local[i].Time.Sub(ref[i].Time).Minutes())),
		}
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, struct {
			Date   string       `json:"date"`
			Method string       `json:"method"`
			Hijri  string       `json:"hijri"`
			Rows   []comparison `json:"rows"`
		}{date.Format("2006-01-02"), resp.Data.Meta.Method.Name, resp.Data.Date.Hijri.Format(), rows})
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Bold("Hisab vs Al Adhan"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s, %s\n", site.Label, gregorianLabel(date))
	if m := resp.Data.Meta.Method.Name; m != "" {
		fmt.Fprintf(w, "  %s\n", display.Gray(m))
	}
	if h := resp.Data.Date.Hijri.Format(); h != "" {
		fmt.Fprintf(w, "  %s\n", display.Gray(h))
	}
	fmt.Fprintln(w)

	tbl := display.NewTable([]string{"Waktu", "Hisab", "Al Adhan", "Selisih"})
	tbl.AlignRight(3)
	for _, r := range rows {
		diff := strconv.Itoa(r.Minutes)
		switch {
		case r.Minutes > 0:
			diff = display.Yellow("+" + diff)
		case r.Minutes < 0:
			diff = display.Yellow(diff)
		}
		tbl.AddRow([]string{r.Name, r.Local, r.Reference, diff})
	}
	fmt.Fprint(w, tbl.Render())
	fmt.Fprintln(w)
	return nil
}

// fetchReference returns Al Adhan timings, using the cache when available.
func fetchReference(cmd *cobra.Command, c *cache.Cache, q api.Query) (*api.Response, error) {
	if c != nil {
		if resp := c.LoadReference(q); resp != nil {
			log.Debug().Str("date", q.Date.Format("2006-01-02")).Msg("reference timings from cache")
			return resp, nil
		}
	}

	resp, err := newAPIClient().Timings(cmd.Context(), q)
	if err != nil {
		return nil, fmt.Errorf("fetching reference timings: %w", err)
	}

	if c != nil {
		if err := c.SaveReference(q, resp); err != nil {
			log.Warn().Err(err).Msg("reference cache write failed")
		}
	}
	return resp, nil
}
