package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/smokyabdulrahman/hisab/internal/config"
	"github.com/smokyabdulrahman/hisab/internal/logging"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude   float64
	FlagLongitude  float64
	FlagTimezone   float64
	FlagElevation  float64
	FlagIhtiyat    float64
	FlagHorizon    string
	FlagDate       string
	FlagJSON       bool
	FlagCacheDir   string
	FlagTimeFormat string
	FlagVerbose    bool
)

// loadedConfig holds defaults, the config file and HISAB_* overrides,
// merged during PersistentPreRunE.
var loadedConfig *config.Config

// now is the clock used for "today" and countdowns.
var now = time.Now

// NewRootCmd creates the root command for the hisab CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "hisab",
		Short:   "Islamic almanac: prayer times, Hijri calendar and hilal reckoning",
		Long:    "Computes prayer times, qibla, the urfi and anchored Hijri calendars with Javanese pasaran,\nthe ijtima' (conjunction) of a Hijri month and tahlil commemoration dates. Everything runs offline.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			fileCfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			envCfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			cfg := config.Defaults()
			cfg.Merge(fileCfg)
			cfg.Merge(envCfg)
			loadedConfig = &cfg

			level := cfg.LogLevel
			if FlagVerbose {
				level = "debug"
			}
			return logging.Setup(level, true, cmd.ErrOrStderr())
		},
		// Default action: show today's prayer schedule.
		RunE:          runToday,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(PrintVersion(version))

	// Register global persistent flags.
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude (requires --longitude)")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude (requires --latitude)")
	pf.Float64Var(&FlagTimezone, "timezone", 0, "Override UTC offset in hours, e.g. 7")
	pf.Float64Var(&FlagElevation, "elevation", 0, "Override elevation in meters")
	pf.Float64Var(&FlagIhtiyat, "ihtiyat", 0, "Override safety margin in minutes")
	pf.StringVar(&FlagHorizon, "horizon", "", "Horizon model: standard (-0.833°) or simplified (-1°)")
	pf.StringVar(&FlagDate, "date", "", "Date to compute, YYYY-MM-DD (default: today)")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON (where supported)")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/hisab/)")
	pf.StringVar(&FlagTimeFormat, "time-format", "", "Time format: 12h or 24h (overrides config)")
	pf.BoolVarP(&FlagVerbose, "verbose", "v", false, "Log debug output to stderr")

	// Register subcommands.
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newDetailCmd())
	rootCmd.AddCommand(newQiblaCmd())
	rootCmd.AddCommand(newCalendarCmd())
	rootCmd.AddCommand(newHijriCmd())
	rootCmd.AddCommand(newMasehiCmd())
	rootCmd.AddCommand(newIjtimaCmd())
	rootCmd.AddCommand(newTahlilCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// PrintVersion prints the version string in the expected format.
func PrintVersion(version string) string {
	return fmt.Sprintf("hisab %s\n", version)
}

// effectiveConfig returns the merged configuration values,
// applying the priority: CLI flags > environment > config file > defaults.
// It uses cobra's Changed() to detect whether a flag was explicitly set.
func effectiveConfig(cmd *cobra.Command) *config.Config {
	cfg := loadedConfig
	if cfg == nil {
		d := config.Defaults()
		cfg = &d
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = &FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = &FlagLongitude
	}
	if flagWasSet(flags, root, "timezone") {
		cfg.Timezone = &FlagTimezone
	}
	if flagWasSet(flags, root, "elevation") {
		cfg.Elevation = FlagElevation
	}
	if flagWasSet(flags, root, "ihtiyat") {
		cfg.Ihtiyat = FlagIhtiyat
	}
	if flagWasSet(flags, root, "horizon") {
		cfg.Horizon = FlagHorizon
	}
	if flagWasSet(flags, root, "cache-dir") {
		cfg.CacheDir = FlagCacheDir
	}
	if flagWasSet(flags, root, "time-format") {
		cfg.TimeFormat = FlagTimeFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = config.Defaults().TimeFormat
	}

	return cfg
}

// flagWasSet checks if a flag was explicitly set on either the local or persistent flag set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// goTimeFormat maps the time_format setting to a Go layout.
func goTimeFormat(cfg *config.Config) string {
	if cfg.TimeFormat == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
