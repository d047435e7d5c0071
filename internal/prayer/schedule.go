package prayer

import (
	"fmt"
	"math"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/astro"
)

// Prayer and event labels, in schedule order.
const (
	Imsak   = "Imsak"
	Subuh   = "Subuh"
	Terbit  = "Terbit"
	Dhuha   = "Dhuha"
	Dzuhur  = "Dzuhur"
	Ashar   = "Ashar"
	Maghrib = "Maghrib"
	Isya    = "Isya"
)

// Altitudes of the sun, in degrees, that define the twilight times.
const (
	SubuhAltitude = -20.0
	IsyaAltitude  = -18.0
)

const (
	// imsakLead is how long before subuh imsak falls.
	imsakLead = 10.0 / 60
	// dhuhaDelay is the time the sun needs to climb 4.5 degrees.
	dhuhaDelay = 4.5 / 15
)

// Schedule is one day of prayer times as fractional hours in [0,24).
type Schedule struct {
	Imsak   float64 `json:"imsak"`
	Subuh   float64 `json:"subuh"`
	Terbit  float64 `json:"terbit"`
	Dhuha   float64 `json:"dhuha"`
	Dzuhur  float64 `json:"dzuhur"`
	Ashar   float64 `json:"ashar"`
	Maghrib float64 `json:"maghrib"`
	Isya    float64 `json:"isya"`
}

// Entry is one labelled time of a schedule.
type Entry struct {
	Name  string
	Hours float64
}

// Entries returns the schedule in order.
func (s Schedule) Entries() []Entry {
	return []Entry{
		{Imsak, s.Imsak},
		{Subuh, s.Subuh},
		{Terbit, s.Terbit},
		{Dhuha, s.Dhuha},
		{Dzuhur, s.Dzuhur},
		{Ashar, s.Ashar},
		{Maghrib, s.Maghrib},
		{Isya, s.Isya},
	}
}

// Get returns the time for a label.
func (s Schedule) Get(name string) (float64, bool) {
	for _, e := range s.Entries() {
		if e.Name == name {
			return e.Hours, true
		}
	}
	return 0, false
}

// Prayers turns the selected labels into wall-clock times on date in loc.
// Times are rounded to the nearest minute, as FormatHM shows them.
func (s Schedule) Prayers(date time.Time, loc *time.Location, selected []string) ([]Prayer, error) {
	var prayers []Prayer
	for _, name := range selected {
		h, ok := s.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown prayer name: %s", name)
		}
		hour, min := clock(h)
		prayers = append(prayers, Prayer{
			Name: name,
			Time: time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, loc),
		})
	}
	return prayers, nil
}

// solution carries the intermediate quantities shared by Compute and Detail.
type solution struct {
	jd            float64
	sun           astro.SolarPosition
	zawal         float64
	dip           float64
	asharAltitude float64
	haSubuh       float64
	haHorizon     float64
	haAshar       float64
	haIsya        float64
	schedule      Schedule
}

func solve(date time.Time, site Site) (solution, error) {
	if err := site.Validate(); err != nil {
		return solution{}, err
	}
	lat, lon := site.Coordinate.Latitude, site.Coordinate.Longitude

	var sol solution
	sol.jd = astro.JulianDay(date.Year(), int(date.Month()), date.Day())
	sol.sun = astro.Solar(sol.jd)
	decl := sol.sun.Declination

	sol.zawal = 12 + site.Timezone - lon/15 - sol.sun.EquationOfTime/60
	if site.UseElevation {
		sol.dip = astro.Dip(site.Elevation)
	}

	sol.asharAltitude = astro.Deg(math.Atan(1 / (1 + math.Tan(astro.Rad(math.Abs(lat-decl))))))
	sol.haSubuh = astro.HourAngle(lat, decl, SubuhAltitude-sol.dip)
	sol.haHorizon = astro.HourAngle(lat, decl, site.Horizon.Altitude()-sol.dip)
	sol.haAshar = astro.HourAngle(lat, decl, sol.asharAltitude)
	sol.haIsya = astro.HourAngle(lat, decl, IsyaAltitude-sol.dip)

	iht := site.Ihtiyat / 60
	z := sol.zawal
	subuh := z - sol.haSubuh + iht
	terbit := z - sol.haHorizon - iht

	sol.schedule = Schedule{
		Imsak:   astro.Normalize24(subuh - imsakLead),
		Subuh:   astro.Normalize24(subuh),
		Terbit:  astro.Normalize24(terbit),
		Dhuha:   astro.Normalize24(terbit + dhuhaDelay + iht),
		Dzuhur:  astro.Normalize24(z + iht),
		Ashar:   astro.Normalize24(z + sol.haAshar + iht),
		Maghrib: astro.Normalize24(z + sol.haHorizon + iht),
		Isya:    astro.Normalize24(z + sol.haIsya + iht),
	}
	return sol, nil
}

// Compute returns the prayer schedule for the civil date of date at site.
func Compute(date time.Time, site Site) (Schedule, error) {
	sol, err := solve(date, site)
	if err != nil {
		return Schedule{}, err
	}
	return sol.schedule, nil
}

// clock rounds fractional hours to the nearest minute.
func clock(hours float64) (int, int) {
	hours = astro.Normalize24(hours)
	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		m = 0
		h++
	}
	return h % 24, m
}

// FormatHM renders fractional hours as HH:MM.
func FormatHM(hours float64) string {
	h, m := clock(hours)
	return fmt.Sprintf("%02d:%02d", h, m)
}
