package calendar

import (
	"fmt"
	"time"
)

// Anchor is the reference day of the anchored calendar, 1 Rajab 1446.
var (
	Anchor      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	AnchorHijri = HijriDate{Day: 1, Month: 7, Year: 1446}
)

// MonthLengths holds observed month lengths, Muharram first, for the
// years the anchored calendar knows about.
var MonthLengths = map[int][12]int{
	1446: {30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 29, 29},
	1447: {30, 29, 30, 29, 30, 30, 30, 30, 29, 30, 29, 29},
	1448: {30, 29, 29, 30, 30, 29, 30, 30, 30, 29, 30, 29},
}

// MonthLength returns the length of a Hijri month in the anchored
// calendar. Years missing from MonthLengths alternate 30 and 29 days,
// with Dzulhijjah getting 30 days in years divisible by 30.
func MonthLength(year, month int) int {
	if l, ok := MonthLengths[year]; ok && month >= 1 && month <= 12 {
		return l[month-1]
	}
	if month == 12 {
		if year%30 == 0 {
			return 30
		}
		return 29
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func nextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

func prevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Anchored returns the Hijri date of t by stepping from Anchor through
// the month-length table. Stepping backwards lands on the last day of
// the preceding month.
func Anchored(t time.Time) HijriDate {
	h := AnchorHijri
	diff := DaysBetween(Anchor, t)

	for diff > 0 {
		rest := MonthLength(h.Year, h.Month) - h.Day
		if diff <= rest {
			h.Day += diff
			break
		}
		diff -= rest + 1
		h.Year, h.Month = nextMonth(h.Year, h.Month)
		h.Day = 1
	}
	for diff < 0 {
		if -diff < h.Day {
			h.Day += diff
			break
		}
		diff += h.Day
		h.Year, h.Month = prevMonth(h.Year, h.Month)
		h.Day = MonthLength(h.Year, h.Month)
	}
	return h
}

// Day is one cell of a Gregorian month grid.
type Day struct {
	Date    time.Time `json:"date"`
	Day     int       `json:"day"`
	Weekday string    `json:"weekday"`
	Pasaran string    `json:"pasaran"`
	Hijri   HijriDate `json:"hijri"`
}

// MonthGrid is a Gregorian month laid out for display.
type MonthGrid struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Name  string `json:"name"`
	// Offset is the number of blank cells before day 1 in a week that
	// starts on Ahad.
	Offset     int       `json:"offset"`
	Days       []Day     `json:"days"`
	HijriStart HijriDate `json:"hijri_start"`
	HijriEnd   HijriDate `json:"hijri_end"`
}

// Month builds the grid for a Gregorian month.
func Month(year, month int) (MonthGrid, error) {
	if month < 1 || month > 12 {
		return MonthGrid{}, fmt.Errorf("%w: month %d out of 1..12", ErrInvalidDate, month)
	}

	first := civil(year, month, 1)
	g := MonthGrid{
		Year:   year,
		Month:  month,
		Name:   GregorianMonthName(month),
		Offset: int(first.Weekday()),
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		g.Days = append(g.Days, Day{
			Date:    d,
			Day:     d.Day(),
			Weekday: WeekdayOf(d),
			Pasaran: PasaranOf(d),
			Hijri:   Anchored(d),
		})
	}
	g.HijriStart = g.Days[0].Hijri
	g.HijriEnd = g.Days[len(g.Days)-1].Hijri
	return g, nil
}

// HijriSpan renders the Hijri months a grid covers, e.g.
// "Rajab - Sya'ban 1446" or "Dzulhijjah 1446 - Muharram 1447".
func (g MonthGrid) HijriSpan() string {
	s, e := g.HijriStart, g.HijriEnd
	switch {
	case s.Month == e.Month && s.Year == e.Year:
		return fmt.Sprintf("%s %d", HijriMonthName(s.Month), s.Year)
	case s.Year == e.Year:
		return fmt.Sprintf("%s - %s %d", HijriMonthName(s.Month), HijriMonthName(e.Month), e.Year)
	default:
		return fmt.Sprintf("%s %d - %s %d", HijriMonthName(s.Month), s.Year, HijriMonthName(e.Month), e.Year)
	}
}
