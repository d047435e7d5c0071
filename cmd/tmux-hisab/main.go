package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/hisab/internal/config"
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/logging"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

var nan = math.NaN()

// options are the status bar flags. Coordinates left at NaN fall back to
// the hisab config file.
type options struct {
	latitude   float64
	longitude  float64
	timezone   float64
	ihtiyat    float64
	format     string
	timeFormat string
	prayers    string
}

func main() {
	var o options
	flag.Float64Var(&o.latitude, "latitude", nan, "Latitude (default: hisab config)")
	flag.Float64Var(&o.longitude, "longitude", nan, "Longitude (default: hisab config)")
	flag.Float64Var(&o.timezone, "timezone", nan, "UTC offset in hours (default: hisab config)")
	flag.Float64Var(&o.ihtiyat, "ihtiyat", nan, "Safety margin in minutes (default: hisab config)")
	flag.StringVar(&o.format, "format", prayer.FormatNameAndTime, prayer.FormatHelp())
	flag.StringVar(&o.timeFormat, "time-format", "", "Time format: 12h or 24h (default: hisab config)")
	flag.StringVar(&o.prayers, "prayers", "", "Comma-separated list of prayers to track (default: hisab config)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("tmux-hisab %s\n", version)
		return
	}

	if err := logging.Setup("warn", true, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("config ignored")
		d := config.Defaults()
		cfg = &d
	}

	if err := run(os.Stdout, cfg, o, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file and HISAB_* variables.
func loadConfig() (*config.Config, error) {
	fileCfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	cfg := config.Defaults()
	cfg.Merge(fileCfg)
	cfg.Merge(envCfg)
	return &cfg, nil
}

// run prints the next prayer for the site described by cfg and o.
func run(w io.Writer, cfg *config.Config, o options, t time.Time) error {
	site, err := cfg.Site()
	if err != nil {
		return err
	}
	if !math.IsNaN(o.latitude) && !math.IsNaN(o.longitude) {
		site.Coordinate = &geo.Coordinate{Latitude: o.latitude, Longitude: o.longitude}
	}
	if !math.IsNaN(o.timezone) {
		site.Timezone = o.timezone
	}
	if !math.IsNaN(o.ihtiyat) {
		site.Ihtiyat = o.ihtiyat
	}

	selected := prayer.DefaultPrayerNames
	raw := cfg.Prayers
	if o.prayers != "" {
		raw = o.prayers
	}
	if raw != "" {
		selected = strings.Split(raw, ",")
		for i := range selected {
			selected[i] = strings.TrimSpace(selected[i])
		}
	}

	timeFmt := cfg.TimeFormat
	if o.timeFormat != "" {
		timeFmt = o.timeFormat
	}
	goTimeFmt := "15:04"
	if timeFmt == "12h" {
		goTimeFmt = "3:04 PM"
	}

	loc := site.Location()
	t = t.In(loc)
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// Today's schedule first, then tomorrow's once the day is over.
	for offset := 0; offset < 2; offset++ {
		date := today.AddDate(0, 0, offset)
		sched, err := prayer.Compute(date, site)
		if err != nil {
			return err
		}
		prayers, err := sched.Prayers(date, loc, selected)
		if err != nil {
			return err
		}
		if next := prayer.NextPrayer(prayers, t); next != nil {
			fmt.Fprint(w, prayer.FormatOutput(*next, t, o.format, goTimeFmt))
			return nil
		}
	}
	return fmt.Errorf("could not determine next prayer")
}
