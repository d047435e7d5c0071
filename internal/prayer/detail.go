package prayer

import (
	"math"
	"time"

	"github.com/smokyabdulrahman/hisab/internal/astro"
	"github.com/smokyabdulrahman/hisab/internal/qibla"
)

// HourAngles are the half-day arcs, in hours, behind each event.
type HourAngles struct {
	Subuh   float64 `json:"subuh"`
	Horizon float64 `json:"horizon"` // terbit and maghrib
	Ashar   float64 `json:"ashar"`
	Isya    float64 `json:"isya"`
}

// Report is the full astronomical working for one day at one site.
type Report struct {
	Date           time.Time           `json:"date"`
	Site           Site                `json:"site"`
	JulianDay      float64             `json:"julian_day"`
	Sun            astro.SolarPosition `json:"sun"`
	Zawal          float64             `json:"zawal"`
	Dip            float64             `json:"dip"`
	HorizonAlt     float64             `json:"horizon_altitude"`
	AsharAltitude  float64             `json:"ashar_altitude"`
	HourAngles     HourAngles          `json:"hour_angles"`
	NishfuLail     float64             `json:"nishfu_lail"`
	Qibla          float64             `json:"qibla"`
	QiblaDirection string              `json:"qibla_direction"`
	Schedule       Schedule            `json:"schedule"`
}

// Detail computes the schedule together with its intermediates, the
// middle of the night and the qibla bearing.
func Detail(date time.Time, site Site) (Report, error) {
	sol, err := solve(date, site)
	if err != nil {
		return Report{}, err
	}
	bearing := qibla.Bearing(*site.Coordinate)

	return Report{
		Date:          date,
		Site:          site,
		JulianDay:     sol.jd,
		Sun:           sol.sun,
		Zawal:         sol.zawal,
		Dip:           sol.dip,
		HorizonAlt:    site.Horizon.Altitude() - sol.dip,
		AsharAltitude: sol.asharAltitude,
		HourAngles: HourAngles{
			Subuh:   sol.haSubuh,
			Horizon: sol.haHorizon,
			Ashar:   sol.haAshar,
			Isya:    sol.haIsya,
		},
		NishfuLail:     NishfuLail(sol.schedule.Maghrib, sol.zawal-sol.haSubuh),
		Qibla:          bearing,
		QiblaDirection: qibla.Direction(bearing),
		Schedule:       sol.schedule,
	}, nil
}

// NishfuLail is the midpoint between maghrib and the next subuh. subuh
// is taken before ihtiyat.
func NishfuLail(maghrib, subuh float64) float64 {
	if subuh < maghrib {
		subuh += 24
	}
	return math.Mod((maghrib+subuh)/2, 24)
}
