package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidHijriDate = errors.New("invalid hijri date")
	ErrInvalidDate      = errors.New("invalid gregorian date")
)

// HijriDate is a day in either Hijri model.
type HijriDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h HijriDate) String() string {
	return fmt.Sprintf("%d %s %d", h.Day, HijriMonthName(h.Month), h.Year)
}

// Validate checks the ranges shared by both Hijri models.
func (h HijriDate) Validate() error {
	if h.Month < 1 || h.Month > 12 {
		return fmt.Errorf("%w: month %d out of 1..12", ErrInvalidHijriDate, h.Month)
	}
	if h.Day < 1 || h.Day > 30 {
		return fmt.Errorf("%w: day %d out of 1..30", ErrInvalidHijriDate, h.Day)
	}
	if h.Year < 1 {
		return fmt.Errorf("%w: year %d before 1 H", ErrInvalidHijriDate, h.Year)
	}
	return nil
}

const (
	// urfiCycleDays is the length of a 30-year urfi cycle.
	urfiCycleDays = 10631
	// urfiEpochOffset moves an urfi day count onto the Gregorian year count.
	urfiEpochOffset = 227014
	// urfiJDNEpoch is subtracted from a JDN to get days since the Hijri epoch.
	urfiJDNEpoch = 1948439
	tropicalYear = 365.2425
)

// urfiMonthStart is the day of the urfi year before month 1..12 begins.
var urfiMonthStart = []int{0, 30, 59, 89, 118, 148, 177, 207, 236, 266, 295, 325}

// gregorianMonthEnd is the day of a common year on which month 1..12 ends.
var gregorianMonthEnd = []int{31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// leapBands maps the year within a 30-year cycle to the leap days already
// accumulated: years up to 4 carry 1, up to 6 carry 2, and so on.
var leapBands = []struct{ upTo, leap int }{
	{4, 1}, {6, 2}, {9, 3}, {12, 4}, {15, 5}, {17, 6}, {20, 7}, {23, 8}, {25, 9}, {29, 10},
}

func leapDays(yearInCycle int) int {
	for _, b := range leapBands {
		if yearInCycle <= b.upTo {
			return b.leap
		}
	}
	return 0
}

// UrfiConversion is the urfi Hijri to Gregorian working, every step kept.
// The traditional row names are given in brackets.
type UrfiConversion struct {
	Hijri          HijriDate `json:"hijri"`
	YearsElapsed   int       `json:"years_elapsed"`    // [tth] year - 1
	Cycles         int       `json:"cycles"`           // [daor] whole 30-year cycles
	YearInCycle    int       `json:"year_in_cycle"`    // [st]
	CycleDays      int       `json:"cycle_days"`       // [jth] cycles * 10631
	YearDays       int       `json:"year_days"`        // [thst] yearInCycle * 354
	LeapDays       int       `json:"leap_days"`        // [ak]
	MonthDays      int       `json:"month_days"`       // [jhds]
	HijriDayCount  int       `json:"hijri_day_count"`  // [jhhk]
	EpochDayCount  int       `json:"epoch_day_count"`  // [jhmk]
	TropicalYears  float64   `json:"tropical_years"`   // [tkt]
	WholeYears     int       `json:"whole_years"`      // [ttM]
	YearFraction   float64   `json:"year_fraction"`    // [sttm]
	DayOfYear      int       `json:"day_of_year"`      // [jhp]
	GregorianYear  int       `json:"gregorian_year"`   // [thnm]
	GregorianMonth int       `json:"gregorian_month"`  // [b-masehi]
	MonthStart     int       `json:"month_start"`      // [x(tglmm)]
	DayOfMonth     int       `json:"day_of_month"`     // [tglmm], may be 0
	WeekdayIndex   int       `json:"weekday_index"`    // [xh]
	PasaranIndex   int       `json:"pasaran_index"`    // [xp]
	Weekday        string    `json:"weekday"`
	Pasaran        string    `json:"pasaran"`
	Date           time.Time `json:"date"`
	// DayZeroAdjusted is set when DayOfMonth came out 0 and Date was
	// moved to the last day of the previous month.
	DayZeroAdjusted bool `json:"day_zero_adjusted"`
}

// HijriToGregorian converts an urfi Hijri date to the Gregorian calendar.
func HijriToGregorian(h HijriDate) (UrfiConversion, error) {
	if err := h.Validate(); err != nil {
		return UrfiConversion{}, err
	}

	c := UrfiConversion{Hijri: h}
	c.YearsElapsed = h.Year - 1
	c.Cycles = c.YearsElapsed / 30
	c.YearInCycle = c.YearsElapsed % 30
	c.CycleDays = c.Cycles * urfiCycleDays
	c.YearDays = c.YearInCycle * 354
	c.LeapDays = leapDays(c.YearInCycle)
	c.MonthDays = urfiMonthStart[h.Month-1]
	c.HijriDayCount = c.CycleDays + c.YearDays + c.LeapDays + c.MonthDays + h.Day
	c.EpochDayCount = urfiEpochOffset + c.HijriDayCount

	c.TropicalYears = float64(c.EpochDayCount) / tropicalYear
	c.WholeYears = int(c.TropicalYears)
	c.YearFraction = c.TropicalYears - float64(c.WholeYears)
	c.DayOfYear = int(math.Floor(c.YearFraction*tropicalYear + 0.5))
	c.GregorianYear = c.WholeYears + 1

	c.GregorianMonth = 12
	for i, end := range gregorianMonthEnd {
		if c.DayOfYear <= end {
			c.GregorianMonth = i + 1
			break
		}
	}
	if c.GregorianMonth > 1 {
		c.MonthStart = gregorianMonthEnd[c.GregorianMonth-2]
	}
	c.DayOfMonth = c.DayOfYear - c.MonthStart

	c.WeekdayIndex = c.HijriDayCount % 7
	c.PasaranIndex = c.HijriDayCount % 5
	c.Weekday = UrfiWeekdays.At(c.HijriDayCount)
	c.Pasaran = UrfiPasaran.At(c.HijriDayCount)

	// time.Date turns day 0 into the last day of the previous month.
	c.Date = civil(c.GregorianYear, c.GregorianMonth, c.DayOfMonth)
	c.DayZeroAdjusted = c.DayOfMonth == 0
	return c, nil
}

// HijriConversion is the Gregorian to urfi Hijri working.
type HijriConversion struct {
	Date        time.Time `json:"date"`
	A           int       `json:"a"`
	Y           int       `json:"y"`
	M           int       `json:"m"`
	JDN         int       `json:"jdn"`
	EpochDays   int       `json:"epoch_days"`    // [jh] JDN - 1948439
	Cycles      int       `json:"cycles"`        // [daur]
	CycleRest   int       `json:"cycle_rest"`    // [sisa hari]
	YearInCycle int       `json:"year_in_cycle"` // [tahun sisa]
	LeapDays    int       `json:"leap_days"`     // [kabisat]
	DayOfYear   int       `json:"day_of_year"`   // [h-tahun], 0-based
	Hijri       HijriDate `json:"hijri"`
	// CycleEnd is set when the remainder is 0: the date closes a 30-year
	// cycle and is 30 Dzulhijjah of its last year.
	CycleEnd bool `json:"cycle_end"`
}

// GregorianToHijri converts a Gregorian date to the urfi Hijri calendar.
func GregorianToHijri(year, month, day int) (HijriConversion, error) {
	t := civil(year, month, day)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return HijriConversion{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}

	c := HijriConversion{Date: t}
	c.A = (14 - month) / 12
	c.Y = year + 4800 - c.A
	c.M = month + 12*c.A - 3
	c.JDN = JDN(year, month, day)
	c.EpochDays = c.JDN - urfiJDNEpoch
	if c.EpochDays < 1 {
		return HijriConversion{}, fmt.Errorf("%w: %04d-%02d-%02d is before 1 Muharram 1 H", ErrInvalidDate, year, month, day)
	}
	c.Cycles = c.EpochDays / urfiCycleDays
	c.CycleRest = c.EpochDays % urfiCycleDays
	if c.CycleRest == 0 {
		c.CycleEnd = true
		c.YearInCycle = 29
		c.LeapDays = (11*c.YearInCycle + 3) / 30
		c.DayOfYear = urfiMonthStart[11] + 29
		c.Hijri = HijriDate{Day: 30, Month: 12, Year: c.Cycles * 30}
		return c, nil
	}
	c.YearInCycle = (c.CycleRest - 1) / 354
	c.DayOfYear = (c.CycleRest - 1) % 354
	c.LeapDays = (11*c.YearInCycle + 3) / 30
	if c.DayOfYear >= c.LeapDays {
		c.DayOfYear -= c.LeapDays
	}

	hm := 12
	for i := 1; i < len(urfiMonthStart); i++ {
		if c.DayOfYear < urfiMonthStart[i] {
			hm = i
			break
		}
	}
	c.Hijri = HijriDate{
		Day:   c.DayOfYear - urfiMonthStart[hm-1] + 1,
		Month: hm,
		Year:  c.Cycles*30 + c.YearInCycle + 1,
	}
	return c, nil
}
