package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/display"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
	"github.com/smokyabdulrahman/hisab/internal/qibla"
)

func newDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detail",
		Short: "Show the astronomical working behind a day's schedule",
		Long:  "Print the sun's position, the hour angles, horizon corrections, the middle of the night\nand the qibla bearing for the target date.",
		Args:  cobra.NoArgs,
		RunE:  runDetail,
	}
}

func newQiblaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qibla",
		Short: "Show the qibla bearing",
		Args:  cobra.NoArgs,
		RunE:  runQibla,
	}
}

func runDetail(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	date, err := targetDate(site.Location())
	if err != nil {
		return err
	}

	r, err := prayer.Detail(date, site.Site)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, r)
	}

	var s display.Sheet
	s.Section("Lokasi")
	s.Add("Tempat", site.Label)
	s.Add("Lintang", prayer.FormatDMS(site.Coordinate.Latitude))
	s.Add("Bujur", prayer.FormatDMS(site.Coordinate.Longitude))
	s.Add("Zona waktu", site.Location().String())
	s.Add("Tinggi tempat", fmt.Sprintf("%g m", site.Elevation))
	s.Add("Ihtiyat", fmt.Sprintf("%g menit", site.Ihtiyat))

	s.Section("Matahari, " + gregorianLabel(date))
	s.Add("Julian Day", fmt.Sprintf("%.1f", r.JulianDay))
	s.Add("Bujur rata-rata", prayer.FormatDMS(r.Sun.MeanLongitude))
	s.Add("Bujur nyata", prayer.FormatDMS(r.Sun.ApparentLongitude))
	s.Add("Kemiringan ekliptika", prayer.FormatDMS(r.Sun.Obliquity))
	s.Add("Deklinasi", prayer.FormatDMS(r.Sun.Declination))
	s.Add("Perata waktu", prayer.FormatHMS(r.Sun.EquationOfTime/60))

	s.Section("Koreksi")
	s.Add("Zawal", prayer.FormatHMS(r.Zawal))
	s.Add("Kerendahan ufuk", prayer.FormatDMS(r.Dip))
	s.Add("Tinggi terbit/terbenam", prayer.FormatDMS(r.HorizonAlt))
	s.Add("Tinggi ashar", prayer.FormatDMS(r.AsharAltitude))

	s.Section("Sudut waktu")
	s.Add("Subuh", prayer.FormatHMS(r.HourAngles.Subuh))
	s.Add("Terbit/Maghrib", prayer.FormatHMS(r.HourAngles.Horizon))
	s.Add("Ashar", prayer.FormatHMS(r.HourAngles.Ashar))
	s.Add("Isya", prayer.FormatHMS(r.HourAngles.Isya))

	s.Section("Jadwal")
	for _, e := range r.Schedule.Entries() {
		s.Add(e.Name, prayer.FormatHMS(e.Hours))
	}
	s.Add("Nishfu lail", prayer.FormatHM(r.NishfuLail))

	s.Section("Kiblat")
	s.Add("Azimut", prayer.FormatDMS(r.Qibla))
	s.Add("Arah", r.QiblaDirection)

	fmt.Fprintln(w)
	fmt.Fprint(w, s.Render())
	fmt.Fprintln(w)
	return nil
}

// qiblaJSON is the JSON output of the qibla command.
type qiblaJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Bearing   float64 `json:"bearing"`
	Direction string  `json:"direction"`
}

func runQibla(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := site.Coordinate.Validate(); err != nil {
		return err
	}

	bearing := qibla.Bearing(*site.Coordinate)
	dir := qibla.Direction(bearing)

	w := cmd.OutOrStdout()
	if FlagJSON {
		return writeJSON(w, qiblaJSON{
			Latitude:  site.Coordinate.Latitude,
			Longitude: site.Coordinate.Longitude,
			Bearing:   bearing,
			Direction: dir,
		})
	}

	fmt.Fprintf(w, "%s  %s (%.2f° dari utara)\n", site.Label, display.Accent(prayer.FormatDMS(bearing)+" "+dir), bearing)
	return nil
}
