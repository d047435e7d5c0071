package calendar

import "time"

// urfiMonthLength is the urfi length of a Hijri month: odd months have
// 30 days, even months 29.
func urfiMonthLength(month int) int {
	if month%2 == 1 {
		return 30
	}
	return 29
}

// AddDays moves h forward n days using urfi month lengths.
func AddDays(h HijriDate, n int) HijriDate {
	for n > 0 {
		rest := urfiMonthLength(h.Month) - h.Day
		if n <= rest {
			h.Day += n
			break
		}
		n -= rest + 1
		h.Day = 1
		h.Month++
		if h.Month > 12 {
			h.Month = 1
			h.Year++
		}
	}
	return h
}

// Commemoration is one of the customary gatherings after a death.
type Commemoration struct {
	Name      string    `json:"name"`
	Hijri     HijriDate `json:"hijri"`
	Gregorian time.Time `json:"gregorian"`
	Weekday   string    `json:"weekday"`
	Pasaran   string    `json:"pasaran"`
}

var commemorations = []struct {
	name  string
	days  int
	years int
}{
	{"1 Hari", 0, 0},
	{"3 Hari", 2, 0},
	{"7 Hari", 6, 0},
	{"40 Hari", 39, 0},
	{"100 Hari", 99, 0},
	{"Haul (1 Tahun)", 0, 1},
}

// Tahlil lists the commemoration dates for a death on the given day.
// The day of death counts as the first day.
func Tahlil(death HijriDate) ([]Commemoration, error) {
	if err := death.Validate(); err != nil {
		return nil, err
	}

	out := make([]Commemoration, 0, len(commemorations))
	for _, c := range commemorations {
		h := AddDays(death, c.days)
		h.Year += c.years

		conv, err := HijriToGregorian(h)
		if err != nil {
			return nil, err
		}
		out = append(out, Commemoration{
			Name:      c.name,
			Hijri:     h,
			Gregorian: conv.Date,
			Weekday:   conv.Weekday,
			Pasaran:   conv.Pasaran,
		})
	}
	return out, nil
}
