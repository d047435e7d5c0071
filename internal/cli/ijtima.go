package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/ijtima"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

var (
	flagEpoch  int
	flagOffset int
	flagMonth  int
	flagTier   int
)

func newIjtimaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ijtima",
		Short: "Reckon the conjunction and hilal visibility of a Hijri month",
		Long: "Work through the tabulated hisab for a Hijri month: the year is given as an epoch\n" +
			"(majmuah, 1410-1550) plus an offset (mabsutoh, 1-10). Prints the conjunction day and time,\n" +
			"the hilal altitude and the first day of the month under the chosen visibility tier.",
		Args: cobra.NoArgs,
		RunE: runIjtima,
	}
	cmd.Flags().IntVar(&flagEpoch, "epoch", 0, "Epoch year (majmuah), 1410-1550")
	cmd.Flags().IntVar(&flagOffset, "offset", 0, "Year offset (mabsutoh), 1-10")
	cmd.Flags().IntVar(&flagMonth, "month", 0, "Hijri month, 1-12")
	cmd.Flags().IntVar(&flagTier, "tier", 0, "Visibility tier 1-4 (default: config visibility_tier)")
	_ = cmd.MarkFlagRequired("epoch")
	_ = cmd.MarkFlagRequired("offset")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func runIjtima(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	tier := flagTier
	if tier == 0 {
		tier = cfg.Tier()
	}

	res, err := ijtima.Compute(ijtima.Request{
		EpochYear:  flagEpoch,
		YearOffset: flagOffset,
		Month:      flagMonth,
		Tier:       tier,
		Observer:   *site.Coordinate,
		Timezone:   site.Timezone,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, res)
	}

	f3 := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

	var s display.Sheet
	s.Section(fmt.Sprintf("Ijtima' %s %d H", res.TargetMonth, res.TargetYear))
	s.Add("Tempat", site.Label)
	s.Add("Awal bulan (urfi)", gregorianLabel(res.Gregorian))

	s.Section("Tabel")
	for _, q := range []struct {
		name string
		l    ijtima.Layer
	}{
		{ijtima.Alamah.String(), res.Alamah},
		{ijtima.Hissoh.String(), res.Hissoh},
		{ijtima.Wasat.String(), res.Wasat},
		{ijtima.Khosoh.String(), res.Khosoh},
		{ijtima.Markaz.String(), res.Markaz},
	} {
		s.Add(q.name, fmt.Sprintf("%s + %s + %s = %s", f3(q.l.Epoch), f3(q.l.Offset), f3(q.l.Month), f3(q.l.Total)))
	}

	s.Section("Ta'dil")
	s.Add("Ta'dil khosoh", f3(res.TadilKhosoh))
	s.Add("Ta'dil markaz", f3(res.TadilMarkaz))
	s.Add("Bu'du ghairu mu'addal", f3(res.BuduGhairMuaddal))
	s.Add("Ta'dil wasat", f3(res.TadilWasat))
	s.Add("Muqawwam", f3(res.Muqawwam))
	s.Add("Burj", fmt.Sprintf("%s (%s)", res.Burj, res.HilalDirection))
	s.Add("Ta'dil ayyam", f3(res.TadilAyyam))
	s.Add("Bu'du mu'addal", f3(res.BuduMuaddal))
	s.Add("Hissoh sa'ah", f3(res.HissohSaah))
	s.Add("Ta'dil alamah", f3(res.TadilAlamah))

	s.Section("Ijtima'")
	s.Add("Waktu rujukan", f3(res.ReferenceTime))
	s.Add("Koreksi bujur", prayer.FormatHMS(res.MeridianCorrection))
	s.Add("Hari", fmt.Sprintf("%s, malam %s", res.ConjunctionDay, res.NextDay))
	s.Add("Jam", fmt.Sprintf("%s setelah maghrib (%s)", prayer.FormatHMS(res.SinceSunset), res.Period))
	s.Add("Setelah zawal", prayer.FormatHMS(res.SinceNoon))
	s.Add("Dzuhur", prayer.FormatHMS(res.Dzuhur))
	s.Add("Maghrib", prayer.FormatHMS(res.Maghrib))

	s.Section("Hilal")
	s.Add("Tinggi", prayer.FormatDMS(res.Altitude))
	s.Add("Mukuts", prayer.FormatHMS(res.Mukuts))
	s.Add("Nur", f3(res.Nur))
	s.Add("Batas (tier "+strconv.Itoa(res.Tier)+")", prayer.FormatDMS(res.Threshold))
	verdict := display.Red(res.Verdict)
	if res.Visible {
		verdict = display.Green(res.Verdict)
	}
	s.Add("Hasil", verdict)
	s.Add("1 "+calendar.HijriMonthName(flagMonth), display.Accent(res.EntryDay))
	if res.Official != nil {
		s.Add("Penetapan resmi", gregorianLabel(res.Official.Date))
	}
	for _, note := range res.Fallbacks {
		s.Add("Catatan", display.Yellow(note))
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, s.Render())
	fmt.Fprintln(w)
	return nil
}
