// Package calendar converts between the Gregorian calendar, Julian Day
// Numbers and two Hijri models: the fixed urfi arithmetic and an
// anchored day-stepping calendar driven by a table of month lengths.
//
// The two Hijri models do not always agree. They are kept apart on
// purpose and neither is derived from the other.
package calendar

import "time"

// JDN returns the Julian Day Number of a proleptic Gregorian date.
func JDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// FromJDN is the inverse of JDN.
func FromJDN(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// DateJDN returns the JDN of the civil date of t, ignoring its clock.
func DateJDN(t time.Time) int {
	return JDN(t.Year(), int(t.Month()), t.Day())
}

// DaysBetween counts civil days from a to b.
func DaysBetween(a, b time.Time) int {
	return DateJDN(b) - DateJDN(a)
}

// civil builds a midnight UTC time for a calendar date.
func civil(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
