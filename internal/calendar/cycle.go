package calendar

import "time"

// Cycle is a fixed ring of names indexed by a day count.
type Cycle []string

// At returns the name for day count n; negative counts wrap.
func (c Cycle) At(n int) string {
	l := len(c)
	return c[((n%l)+l)%l]
}

var (
	// Weekdays in Indonesian, Ahad (Sunday) first.
	Weekdays = Cycle{"Ahad", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	// Pasaran is the Javanese five-day market week.
	Pasaran = Cycle{"Legi", "Pahing", "Pon", "Wage", "Kliwon"}

	// UrfiWeekdays is indexed by the urfi Hijri day count, where
	// remainder 0 falls on Kamis.
	UrfiWeekdays = Cycle{"Kamis", "Jumat", "Sabtu", "Minggu", "Senin", "Selasa", "Rabu"}
	// UrfiPasaran is indexed by the urfi Hijri day count, where remainder
	// 0 falls on Kliwon.
	UrfiPasaran = Cycle{"Kliwon", "Legi", "Pahing", "Pon", "Wage"}
)

// CalendarAnchor is day 0 of the calendar grid cycles: Rabu Legi,
// 1 January 2020.
var CalendarAnchor = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// anchorWeekday is the Weekdays index of CalendarAnchor.
const anchorWeekday = 3

// WeekdayOf names the weekday of the civil date of t.
func WeekdayOf(t time.Time) string {
	return Weekdays.At(DaysBetween(CalendarAnchor, t) + anchorWeekday)
}

// PasaranOf names the pasaran of the civil date of t.
func PasaranOf(t time.Time) string {
	return Pasaran.At(DaysBetween(CalendarAnchor, t))
}
