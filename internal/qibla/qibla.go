// Package qibla computes the direction of the Kaaba from an observer.
package qibla

import (
	"math"

	"github.com/smokyabdulrahman/hisab/internal/astro"
	"github.com/smokyabdulrahman/hisab/internal/geo"
)

// Kaaba is the fixed target of every bearing.
var Kaaba = geo.Coordinate{Latitude: 21.4225, Longitude: 39.8262}

// Bearing returns the great-circle initial bearing from observer to the
// Kaaba, in degrees clockwise from true north, in [0,360).
func Bearing(observer geo.Coordinate) float64 {
	phi := astro.Rad(observer.Latitude)
	phiK := astro.Rad(Kaaba.Latitude)
	dLon := astro.Rad(Kaaba.Longitude - observer.Longitude)

	b := math.Atan2(math.Sin(dLon), math.Cos(phi)*math.Tan(phiK)-math.Sin(phi)*math.Cos(dLon))
	return math.Mod(astro.Deg(b)+360, 360)
}

// compass is the eight-point rose in Indonesian, starting at north.
var compass = []string{"U", "TL", "T", "TG", "S", "BD", "B", "BL"}

// Direction names the compass sector a bearing falls in, e.g. "BL"
// (barat laut, north-west) for Java.
func Direction(bearing float64) string {
	i := int(math.Floor(astro.Normalize360(bearing)/45+0.5)) % len(compass)
	return compass[i]
}
