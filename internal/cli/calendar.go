package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/display"
)

var (
	flagCalYear  int
	flagCalMonth int
)

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a Gregorian month with pasaran and Hijri dates",
		Long:  "Lay out a Gregorian month, Ahad first. Each day shows its pasaran and its day in the\nanchored Hijri calendar (Arabic digits).",
		Args:  cobra.NoArgs,
		RunE:  runCalendar,
	}
	cmd.Flags().IntVar(&flagCalYear, "year", 0, "Gregorian year (default: current)")
	cmd.Flags().IntVar(&flagCalMonth, "month", 0, "Gregorian month 1-12 (default: current)")
	return cmd
}

func newHijriCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hijri <day> <month> <year>",
		Short: "Convert an urfi Hijri date to Gregorian",
		Long:  "Convert a Hijri date to the Gregorian calendar with the arithmetic (urfi) calendar,\nprinting every intermediate step.",
		Args:  cobra.ExactArgs(3),
		RunE:  runHijri,
	}
}

func newMasehiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "masehi <day> <month> <year>",
		Short: "Convert a Gregorian date to urfi Hijri",
		Args:  cobra.ExactArgs(3),
		RunE:  runMasehi,
	}
}

func newTahlilCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tahlil <day> <month> <year>",
		Short: "List commemoration dates after a death",
		Long:  "Given the Hijri date of death, list the 1st, 3rd, 7th, 40th and 100th day and the first\nhaul, with Gregorian date, weekday and pasaran.",
		Args:  cobra.ExactArgs(3),
		RunE:  runTahlil,
	}
}

// parseDMY reads three integer arguments as day, month, year.
func parseDMY(args []string) (int, int, int, error) {
	var v [3]int
	names := [3]string{"day", "month", "year"}
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s %q: must be an integer", names[i], a)
		}
		v[i] = n
	}
	return v[0], v[1], v[2], nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	site, err := cfg.Site()
	if err != nil {
		return err
	}
	loc := site.Location()
	t := now().In(loc)

	year, month := flagCalYear, flagCalMonth
	if year == 0 {
		year = t.Year()
	}
	if month == 0 {
		month = int(t.Month())
	}

	g, err := calendar.Month(year, month)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, struct {
			calendar.MonthGrid
			HijriSpan string `json:"hijri_span"`
		}{g, g.HijriSpan()})
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("%s %d", g.Name, g.Year))
	fmt.Fprintf(w, "  %s\n", display.Cyan(g.HijriSpan()))
	fmt.Fprintln(w)

	headers := make([]string, len(calendar.Weekdays))
	copy(headers, calendar.Weekdays)
	grid := display.NewGrid(headers, g.Offset)
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for i, d := range g.Days {
		hijri := calendar.ArabicDigits(strconv.Itoa(d.Hijri.Day))
		if d.Hijri.Day == 1 {
			hijri += " " + calendar.HijriMonthName(d.Hijri.Month)[:3]
		}
		grid.Add(strconv.Itoa(d.Day), d.Pasaran, hijri)
		if d.Date.Equal(today) {
			grid.SetHighlight(i)
		}
	}

	fmt.Fprint(w, grid.Render())
	fmt.Fprintln(w)
	return nil
}

func runHijri(cmd *cobra.Command, args []string) error {
	d, m, y, err := parseDMY(args)
	if err != nil {
		return err
	}
	c, err := calendar.HijriToGregorian(calendar.HijriDate{Day: d, Month: m, Year: y})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, c)
	}

	var s display.Sheet
	s.Section(fmt.Sprintf("%s H (urfi)", c.Hijri))
	s.Add("Tahun tam", strconv.Itoa(c.YearsElapsed))
	s.Add("Daur 30 tahun", strconv.Itoa(c.Cycles))
	s.Add("Sisa tahun", strconv.Itoa(c.YearInCycle))
	s.Add("Hari daur", strconv.Itoa(c.CycleDays))
	s.Add("Hari tahun", strconv.Itoa(c.YearDays))
	s.Add("Kabisat", strconv.Itoa(c.LeapDays))
	s.Add("Hari bulan", strconv.Itoa(c.MonthDays))
	s.Add("Jumlah hari Hijriyah", strconv.Itoa(c.HijriDayCount))
	s.Add("Jumlah hari Masehi", strconv.Itoa(c.EpochDayCount))
	s.Add("Tahun tropis", strconv.FormatFloat(c.TropicalYears, 'f', 6, 64))
	s.Add("Pecahan tahun", strconv.FormatFloat(c.YearFraction, 'f', 6, 64))
	s.Add("Hari ke", strconv.Itoa(c.DayOfYear))
	s.Add("Tanggal", strconv.Itoa(c.DayOfMonth))

	s.Section("Hasil")
	s.Add("Masehi", gregorianLabel(c.Date))
	s.Add("Hari (urfi)", c.Weekday+" "+c.Pasaran)
	if c.DayZeroAdjusted {
		s.Add("Catatan", display.Yellow("tanggal 0 digeser ke akhir bulan sebelumnya"))
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, s.Render())
	fmt.Fprintln(w)
	return nil
}

func runMasehi(cmd *cobra.Command, args []string) error {
	d, m, y, err := parseDMY(args)
	if err != nil {
		return err
	}
	c, err := calendar.GregorianToHijri(y, m, d)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, c)
	}

	var s display.Sheet
	s.Section(gregorianLabel(c.Date))
	s.Add("JDN", strconv.Itoa(c.JDN))
	s.Add("Hari sejak hijrah", strconv.Itoa(c.EpochDays))
	s.Add("Daur", strconv.Itoa(c.Cycles))
	s.Add("Sisa hari", strconv.Itoa(c.CycleRest))
	s.Add("Tahun dalam daur", strconv.Itoa(c.YearInCycle))
	s.Add("Kabisat", strconv.Itoa(c.LeapDays))
	s.Add("Hari dalam tahun", strconv.Itoa(c.DayOfYear))

	s.Section("Hasil")
	s.Add("Hijriyah (urfi)", c.Hijri.String()+" H")
	s.Add("", arabicLabel(c.Hijri))
	s.Add("Hijriyah (rukyat)", calendar.Anchored(c.Date).String()+" H")
	if c.CycleEnd {
		s.Add("Catatan", display.Yellow("sisa hari 0, hari terakhir daur"))
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, s.Render())
	fmt.Fprintln(w)
	return nil
}

func runTahlil(cmd *cobra.Command, args []string) error {
	d, m, y, err := parseDMY(args)
	if err != nil {
		return err
	}
	death := calendar.HijriDate{Day: d, Month: m, Year: y}
	dates, err := calendar.Tahlil(death)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, dates)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", display.Boldf("Tahlil, wafat %s H", death))
	fmt.Fprintln(w)

	tbl := display.NewTable([]string{"Peringatan", "Hijriyah", "Masehi", "Hari"})
	for _, c := range dates {
		tbl.AddRow([]string{
			c.Name,
			c.Hijri.String(),
			fmt.Sprintf("%d %s %d", c.Gregorian.Day(), calendar.GregorianMonthName(int(c.Gregorian.Month())), c.Gregorian.Year()),
			c.Weekday + " " + c.Pasaran,
		})
	}
	fmt.Fprint(w, tbl.Render())
	fmt.Fprintln(w)
	return nil
}
