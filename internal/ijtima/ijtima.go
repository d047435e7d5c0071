// Package ijtima estimates the conjunction (ijtima') that ends a Hijri
// month and whether the new crescent can be seen on the following
// evening, using the tabular method of the taqrib school.
//
// Every intermediate of the working is kept in Result so a reader can
// check it line by line against a hand calculation.
package ijtima

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/astro"
	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/geo"
)

var ErrInvalidRequest = errors.New("invalid ijtima request")

// ReferenceMeridian is the longitude the tables are computed for.
const ReferenceMeridian = 106.8272

const (
	// dorobFactor turns the combined correction into the hourly drift.
	dorobFactor = 0.08333
	// mukutsRate is the time the crescent stays up per degree of altitude.
	mukutsRate = 0.0667
	// sunsetAltitude is the geometric altitude of the sun at sunset.
	sunsetAltitude = -0.833
)

// Quantity names one of the five mean-motion arguments.
type Quantity int

const (
	Alamah Quantity = iota
	Hissoh
	Wasat
	Khosoh
	Markaz
)

func (q Quantity) String() string {
	return [...]string{"alamah", "hissoh", "wasat", "khosoh", "markaz"}[q]
}

// Domain is the period a quantity is reduced into.
func (q Quantity) Domain() float64 {
	if q == Alamah {
		return 168
	}
	return 360
}

// Layers are the three tables summed for one quantity.
type Layers struct {
	Epoch  ThresholdTable
	Offset ThresholdTable
	Month  ThresholdTable
}

// Burj are the zodiac houses, Aries first. The thirteenth entry closes
// the circle.
var Burj = []string{
	"Al-Haml", "As-Tsaur", "Al-Jauza", "As-Saratan", "Al-Asad", "As-Sunbulah",
	"Al-Mizan", "Al-Aqrab", "Al-Qaus", "Al-Jadyu", "Ad-Dalwu", "Al-Hut", "Al-Haml",
}

var (
	// conjunctionDays is indexed by whole days of the corrected alamah.
	conjunctionDays = []string{"Sabtu", "Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jum'at"}
	// entryDays is indexed the same way, shifted one day on.
	entryDays = []string{"Ahad", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
)

// Request selects the month to compute and where it is observed from.
// Epoch years and offsets outside the tables, and tiers outside 1..4,
// are not errors: lookups past a table read 0 and the tier is clamped.
type Request struct {
	EpochYear  int            `json:"epoch_year"`  // majmuah, tables cover 1410..1550
	YearOffset int            `json:"year_offset"` // mabsutoh, tables cover 1..10
	Month      int            `json:"month"`       // 1..12
	Tier       int            `json:"tier"`        // visibility tier, 1..4
	Observer   geo.Coordinate `json:"observer"`
	Timezone   float64        `json:"timezone"`
}

// Validate checks what no table can absorb: the month, which names the
// target and its Gregorian date, and the observer.
func (r Request) Validate() error {
	switch {
	case r.Month < 1 || r.Month > 12:
		return fmt.Errorf("%w: month %d out of 1..12", ErrInvalidRequest, r.Month)
	case r.Timezone < -12 || r.Timezone > 14:
		return fmt.Errorf("%w: timezone %g out of -12..14", ErrInvalidRequest, r.Timezone)
	}
	if err := r.Observer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// fallbacks lists the inputs that fell outside the tables.
func (r Request) fallbacks() []string {
	var notes []string
	t := layers[Alamah]
	if t.Epoch.Beyond(float64(r.EpochYear)) {
		notes = append(notes, fmt.Sprintf("epoch year %d past the table, epoch rows read 0", r.EpochYear))
	}
	if t.Offset.Beyond(float64(r.YearOffset)) {
		notes = append(notes, fmt.Sprintf("year offset %d past the table, offset rows read 0", r.YearOffset))
	}
	if tier := clampTier(r.Tier); tier != r.Tier {
		notes = append(notes, fmt.Sprintf("tier %d clamped to %d", r.Tier, tier))
	}
	return notes
}

// Layer is the lookup and reduction of one quantity.
type Layer struct {
	Epoch  float64 `json:"epoch"`
	Offset float64 `json:"offset"`
	Month  float64 `json:"month"`
	Sum    float64 `json:"sum"`
	Total  float64 `json:"total"`
}

// Result is the full working of one month.
type Result struct {
	Request Request `json:"request"`
	// Tier is the visibility tier applied, Request.Tier clamped to 1..4.
	Tier int `json:"tier"`
	// Fallbacks notes inputs that were outside the tables.
	Fallbacks []string `json:"fallbacks,omitempty"`

	Alamah Layer `json:"alamah"`
	Hissoh Layer `json:"hissoh"`
	Wasat  Layer `json:"wasat"`
	Khosoh Layer `json:"khosoh"`
	Markaz Layer `json:"markaz"`

	AlamahRounded float64 `json:"alamah_rounded"`
	WasatRounded  float64 `json:"wasat_rounded"`
	KhosohRounded float64 `json:"khosoh_rounded"`
	MarkazRounded float64 `json:"markaz_rounded"`
	HissohRounded float64 `json:"hissoh_rounded"`

	TadilKhosoh      float64 `json:"tadil_khosoh"`
	TadilMarkaz      float64 `json:"tadil_markaz"`
	BuduGhairMuaddal float64 `json:"budu_ghair_muaddal"`
	Dorob            float64 `json:"dorob"`
	TadilWasat       float64 `json:"tadil_wasat"`
	Muqawwam         float64 `json:"muqawwam"`
	BurjIndex        int     `json:"burj_index"`
	Burj             string  `json:"burj"`
	HilalDirection   string  `json:"hilal_direction"`
	TadilAyyam       float64 `json:"tadil_ayyam"`
	BuduMuaddal      float64 `json:"budu_muaddal"`
	ThulSyams        float64 `json:"thul_syams"`
	HissohSaah       float64 `json:"hissoh_saah"`
	TadilAlamah      float64 `json:"tadil_alamah"`

	// ReferenceTime is the corrected alamah at ReferenceMeridian, in hours.
	ReferenceTime      float64 `json:"reference_time"`
	MeridianCorrection float64 `json:"meridian_correction"`
	// LocalTime is the corrected alamah at the observer, shifted one day.
	LocalTime           float64 `json:"local_time"`
	ConjunctionDayIndex int     `json:"conjunction_day_index"`
	ConjunctionDay      string  `json:"conjunction_day"`
	NextDay             string  `json:"next_day"`
	Period              string  `json:"period"`

	TargetYear  int       `json:"target_year"`
	TargetMonth string    `json:"target_month"`
	Gregorian   time.Time `json:"gregorian"`

	Zawal   float64 `json:"zawal"`
	Dzuhur  float64 `json:"dzuhur"`
	Maghrib float64 `json:"maghrib"`

	// SinceSunset is the conjunction time counted from sunset.
	SinceSunset float64 `json:"since_sunset"`
	// SinceNoon is the conjunction time counted from true noon.
	SinceNoon float64 `json:"since_noon"`
	ToSunset  float64 `json:"to_sunset"`
	Altitude  float64 `json:"altitude"`
	Mukuts    float64 `json:"mukuts"`
	Kamiyah   float64 `json:"kamiyah"`
	Nur       float64 `json:"nur"`

	Threshold float64 `json:"threshold"`
	Visible   bool    `json:"visible"`
	Verdict   string  `json:"verdict"`
	EntryDay  string  `json:"entry_day"`

	// Official is the announced first day of the month, when known.
	Official *Reference `json:"official,omitempty"`
}

// Compute works through the tables for r.
func Compute(r Request) (Result, error) {
	if err := r.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Request: r, Tier: clampTier(r.Tier), Fallbacks: r.fallbacks()}
	res.Alamah = layer(Alamah, r)
	res.Hissoh = layer(Hissoh, r)
	res.Wasat = layer(Wasat, r)
	res.Khosoh = layer(Khosoh, r)
	res.Markaz = layer(Markaz, r)

	res.AlamahRounded = round3(res.Alamah.Total)
	res.WasatRounded = round3(res.Wasat.Total)
	res.KhosohRounded = roundHalfUp(res.Khosoh.Total)
	res.MarkazRounded = roundHalfUp(res.Markaz.Total)
	res.HissohRounded = roundHalfUp(res.Hissoh.Total)

	res.TadilKhosoh = tadilKhosoh.At(res.KhosohRounded)
	res.TadilMarkaz = tadilMarkaz.At(res.MarkazRounded)
	res.BuduGhairMuaddal = res.TadilKhosoh + res.TadilMarkaz
	res.Dorob = res.BuduGhairMuaddal * dorobFactor
	res.TadilWasat = res.TadilMarkaz + res.Dorob
	res.Muqawwam = res.WasatRounded - res.TadilWasat

	res.BurjIndex = min(max(int(res.Muqawwam/30), 0), 12)
	res.Burj = Burj[res.BurjIndex]
	res.HilalDirection = hilalDirection(res.BurjIndex)

	res.TadilAyyam = tadilAyyam.Find(roundHalfUp(res.Muqawwam))
	res.BuduMuaddal = res.BuduGhairMuaddal - res.TadilAyyam
	res.ThulSyams = res.Muqawwam - res.BuduMuaddal
	res.HissohSaah = hissohSaah.Find(res.KhosohRounded)
	res.TadilAlamah = res.BuduMuaddal * res.HissohSaah

	res.ReferenceTime = res.AlamahRounded - res.TadilAlamah
	if res.ReferenceTime <= 0 {
		res.ReferenceTime += Alamah.Domain()
	}
	res.MeridianCorrection = math.Abs(r.Observer.Longitude-ReferenceMeridian) / 15
	res.LocalTime = res.ReferenceTime - res.MeridianCorrection + 1
	res.ConjunctionDayIndex = int(res.LocalTime / 24)
	res.ConjunctionDay = conjunctionDays[res.ConjunctionDayIndex%7]
	res.NextDay = conjunctionDays[(res.ConjunctionDayIndex+1)%7]

	res.TargetYear = r.EpochYear + r.YearOffset
	if r.Month <= 1 {
		res.TargetYear++
	}
	res.TargetMonth = calendar.HijriMonthName(r.Month)
	conv, err := calendar.HijriToGregorian(calendar.HijriDate{Day: 1, Month: r.Month, Year: res.TargetYear})
	if err != nil {
		return Result{}, fmt.Errorf("converting target month: %w", err)
	}
	res.Gregorian = conv.Date

	sun := astro.Solar(astro.JulianDay(conv.Date.Year(), int(conv.Date.Month()), conv.Date.Day()))
	res.Zawal = 12 + r.Timezone - r.Observer.Longitude/15 - sun.EquationOfTime/60
	res.Dzuhur = round3(res.Zawal + 2.0/6)
	res.Maghrib = round3(res.Zawal + astro.HourAngle(r.Observer.Latitude, sun.Declination, sunsetAltitude) + 2.0/60)

	res.SinceSunset = math.Mod(res.LocalTime, 24)
	res.SinceNoon = sinceNoon(res.SinceSunset, res.Dzuhur-12)
	if res.SinceSunset <= 12 {
		res.Period = "Malam"
	} else {
		res.Period = "Hari"
	}

	res.ToSunset = 24 - res.SinceSunset
	res.Altitude = res.ToSunset / 2
	res.Mukuts = res.Altitude * mukutsRate
	res.Kamiyah = kamiyah.At(res.HissohRounded)
	res.Nur = res.Kamiyah + res.Mukuts

	res.Threshold = threshold(res.Tier)
	res.Visible = round3(res.Altitude) >= res.Threshold
	shift := 1
	res.Verdict = "Ghairu Imkan Rukyat"
	if res.Visible {
		shift = 0
		res.Verdict = "Imkan Rukyat"
	}
	res.EntryDay = entryDays[(res.ConjunctionDayIndex+shift)%7]
	if ref, ok := ReferenceDate(res.TargetYear, r.Month); ok {
		res.Official = &ref
	}
	return res, nil
}

func layer(q Quantity, r Request) Layer {
	t := layers[q]
	l := Layer{
		Epoch:  t.Epoch.Find(float64(r.EpochYear)),
		Offset: t.Offset.Find(float64(r.YearOffset)),
		Month:  t.Month.Find(float64(r.Month)),
	}
	l.Sum = l.Epoch + l.Offset + l.Month
	l.Total = reduce(reduce(l.Sum, q.Domain()), q.Domain())
	return l
}

func reduce(v, domain float64) float64 {
	if v >= domain {
		return v - domain
	}
	return v
}

// sinceNoon converts a time counted from sunset into one counted from
// true noon; noonOffset is the distance of dzuhur from 12:00.
func sinceNoon(sinceSunset, noonOffset float64) float64 {
	switch {
	case sinceSunset < 18:
		return sinceSunset + 6 + noonOffset
	case sinceSunset-18 < 1:
		return sinceSunset - 18 + 12 + noonOffset
	default:
		return sinceSunset - 18
	}
}

func hilalDirection(burj int) string {
	if burj <= 2 || burj > 8 {
		return "Utara"
	}
	return "Selatan"
}

func clampTier(tier int) int {
	return min(max(tier, 1), 4)
}

// threshold is the minimum crescent altitude, in degrees, a tier
// accepts as visible.
func threshold(tier int) float64 {
	return [...]float64{2, 3, 6, 7}[clampTier(tier)-1]
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func round3(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}
