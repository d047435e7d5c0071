package prayer

import (
	"errors"
	"fmt"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/geo"
)

// ErrNoCoordinate is returned when a schedule is requested for a site
// that has no coordinate. Callers must not silently substitute a default.
var ErrNoCoordinate = errors.New("no coordinate configured")

// Horizon selects the sun altitude used for terbit and maghrib.
type Horizon string

const (
	// HorizonStandard accounts for refraction and the solar semi-diameter.
	HorizonStandard Horizon = "standard"
	// HorizonSimplified rounds the sunrise/sunset altitude to one degree.
	HorizonSimplified Horizon = "simplified"
)

// Altitude returns the horizon altitude in degrees. Unknown or empty
// values fall back to the standard horizon.
func (h Horizon) Altitude() float64 {
	if h == HorizonSimplified {
		return -1
	}
	return -0.833
}

// ParseHorizon validates a horizon name.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case HorizonStandard, HorizonSimplified:
		return Horizon(s), nil
	case "":
		return HorizonStandard, nil
	}
	return "", fmt.Errorf("invalid horizon %q: must be %q or %q", s, HorizonStandard, HorizonSimplified)
}

// Site is everything about the observer the calculator needs.
type Site struct {
	Coordinate   *geo.Coordinate `json:"coordinate"`
	Timezone     float64         `json:"timezone"`      // hours east of UTC
	Elevation    float64         `json:"elevation"`     // meters
	UseElevation bool            `json:"use_elevation"` // apply the dip correction
	Ihtiyat      float64         `json:"ihtiyat"`       // safety margin, minutes
	Horizon      Horizon         `json:"horizon"`
}

// Validate checks the site before any computation.
func (s Site) Validate() error {
	if s.Coordinate == nil {
		return ErrNoCoordinate
	}
	if err := s.Coordinate.Validate(); err != nil {
		return err
	}
	if s.Timezone < -12 || s.Timezone > 14 {
		return fmt.Errorf("invalid timezone %v: must be between -12 and 14", s.Timezone)
	}
	if s.Elevation < 0 {
		return fmt.Errorf("invalid elevation %v: must not be negative", s.Elevation)
	}
	return nil
}

// Location returns a fixed time zone matching the site's offset.
func (s Site) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+g", s.Timezone), int(s.Timezone*3600))
}
