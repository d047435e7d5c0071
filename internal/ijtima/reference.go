package ijtima

import "time"

// Reference is an officially announced first day of a Hijri month.
type Reference struct {
	Date    time.Time `json:"date"`
	Pasaran string    `json:"pasaran,omitempty"`
}

func ref(y int, m time.Month, d int, pasaran string) Reference {
	return Reference{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Pasaran: pasaran}
}

// references has no entry for Jumadil Akhir 1447.
var references = map[int]map[int]Reference{
	1447: {
		1:  ref(2025, time.July, 20, ""),
		2:  ref(2025, time.August, 20, ""),
		3:  ref(2025, time.September, 19, ""),
		4:  ref(2025, time.October, 20, ""),
		5:  ref(2025, time.November, 18, ""),
		7:  ref(2025, time.December, 18, ""),
		8:  ref(2026, time.January, 20, "Pahing"),
		9:  ref(2026, time.February, 19, "Pahing"),
		10: ref(2026, time.March, 20, "Legi"),
		11: ref(2026, time.April, 19, "Legi"),
		12: ref(2026, time.May, 18, "Kliwon"),
	},
	1448: {
		1:  ref(2026, time.June, 16, "Wage"),
		2:  ref(2026, time.July, 16, "Wage"),
		3:  ref(2026, time.August, 14, "Pon"),
		4:  ref(2026, time.September, 12, "Pahing"),
		5:  ref(2026, time.October, 12, "Pahing"),
		6:  ref(2026, time.November, 11, "Pahing"),
		7:  ref(2026, time.December, 10, "Legi"),
		8:  ref(2027, time.January, 9, "Legi"),
		9:  ref(2027, time.February, 8, "Legi"),
		10: ref(2027, time.March, 10, "Legi"),
		11: ref(2027, time.April, 8, "Kliwon"),
		12: ref(2027, time.May, 8, "Kliwon"),
	},
}

// ReferenceDate returns the announced first day of a Hijri month, if
// one is known.
func ReferenceDate(year, month int) (Reference, bool) {
	r, ok := references[year][month]
	return r, ok
}
