// Package astro holds the low-precision solar model used by every
// calculator in hisab: Julian Day, solar declination, equation of time
// and the hour angle at which the sun reaches a given altitude.
//
// All angles are degrees. Conversion to radians happens at the trig call.
package astro

import "math"

// J2000 is the Julian Day of 2000-01-01 12:00 TT.
const J2000 = 2451545.0

// SolarPosition is the sun's position for one Julian Day, with every
// intermediate term of the series kept for reporting.
type SolarPosition struct {
	T                 float64 `json:"t"`                  // Julian centuries since J2000
	MeanLongitude     float64 `json:"mean_longitude"`     // L, degrees in [0,360)
	MeanAnomaly       float64 `json:"mean_anomaly"`       // g, degrees (unreduced)
	EquationOfCenter  float64 `json:"equation_of_center"` // C, degrees
	ApparentLongitude float64 `json:"apparent_longitude"` // λ = L + C
	Obliquity         float64 `json:"obliquity"`          // ε, degrees
	Declination       float64 `json:"declination"`        // δ, degrees
	EquationOfTime    float64 `json:"equation_of_time"`   // minutes
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Normalize360 reduces an angle into [0,360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Normalize24 reduces a time of day in hours into [0,24).
func Normalize24(h float64) float64 {
	h = math.Mod(h+24, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// JulianDay returns the Julian Day at 0h UT of the given proleptic
// Gregorian date. January and February count as months 13 and 14 of the
// previous year.
func JulianDay(year, month, day int) float64 {
	y, m := float64(year), float64(month)
	if month <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
}

// Solar computes the sun's declination and the equation of time.
func Solar(jd float64) SolarPosition {
	t := (jd - J2000) / 36525
	l := math.Mod(280.46646+36000.76983*t, 360)
	g := 357.52911 + 35999.05029*t
	c := (1.914602-0.004817*t)*math.Sin(Rad(g)) + 0.019993*math.Sin(Rad(2*g))
	lambda := l + c
	eps := 23.439291 - 0.0130042*t

	decl := Deg(math.Asin(math.Sin(Rad(eps)) * math.Sin(Rad(lambda))))

	y := math.Pow(math.Tan(Rad(eps/2)), 2)
	e := 0.016708
	eot := 4 * Deg(y*math.Sin(Rad(2*l))-2*e*math.Sin(Rad(g)))

	return SolarPosition{
		T:                 t,
		MeanLongitude:     l,
		MeanAnomaly:       g,
		EquationOfCenter:  c,
		ApparentLongitude: lambda,
		Obliquity:         eps,
		Declination:       decl,
		EquationOfTime:    eot,
	}
}

// HourAngle returns, in hours, how far from local solar noon the sun sits
// at altitude alt for an observer at latitude lat when the declination is
// decl. When the sun never reaches alt the cosine is clamped, giving 0 or
// 12 hours instead of NaN.
func HourAngle(lat, decl, alt float64) float64 {
	cosH := (math.Sin(Rad(alt)) - math.Sin(Rad(lat))*math.Sin(Rad(decl))) /
		(math.Cos(Rad(lat)) * math.Cos(Rad(decl)))
	cosH = math.Max(-1, math.Min(1, cosH))
	return Deg(math.Acos(cosH)) / 15
}

// Dip returns the horizon depression in degrees for an observer
// elevationMeters above the surrounding terrain.
func Dip(elevationMeters float64) float64 {
	if elevationMeters <= 0 {
		return 0
	}
	return 0.0293 * math.Sqrt(elevationMeters)
}
