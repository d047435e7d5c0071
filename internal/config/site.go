package config

import (
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

// Coordinate returns the configured coordinate, or nil when latitude
// and longitude are not both set.
func (c *Config) Coordinate() *geo.Coordinate {
	if c.Latitude == nil || c.Longitude == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *c.Latitude, Longitude: *c.Longitude}
}

// NeedsDetection reports whether the site must come from IP
// geolocation.
func (c *Config) NeedsDetection() bool {
	return c.LocationMode == ModeAuto && c.Coordinate() == nil
}

// Site builds the observer site. In the default mode the built-in
// coordinate fills in when none is set; in manual and auto modes the
// coordinate stays nil so the calculator reports prayer.ErrNoCoordinate.
func (c *Config) Site() (prayer.Site, error) {
	horizon, err := prayer.ParseHorizon(c.Horizon)
	if err != nil {
		return prayer.Site{}, err
	}

	s := prayer.Site{
		Coordinate:   c.Coordinate(),
		Timezone:     DefaultTimezone,
		Elevation:    c.Elevation,
		UseElevation: c.UseElevation == nil || *c.UseElevation,
		Ihtiyat:      c.Ihtiyat,
		Horizon:      horizon,
	}
	if c.Timezone != nil {
		s.Timezone = *c.Timezone
	}
	if s.Coordinate == nil && (c.LocationMode == "" || c.LocationMode == ModeDefault) {
		s.Coordinate = &geo.Coordinate{Latitude: DefaultLatitude, Longitude: DefaultLongitude}
	}
	return s, nil
}

// Tier returns the visibility tier, defaulting to 1.
func (c *Config) Tier() int {
	if c.VisibilityTier == 0 {
		return 1
	}
	return c.VisibilityTier
}
