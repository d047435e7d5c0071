package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

var (
	flagFormat  string
	flagPrayers string
)

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown.\nSuitable for status bars such as tmux.",
		RunE:  runNext,
	}

	cmd.Flags().StringVar(&flagFormat, "format", prayer.FormatFull, prayer.FormatHelp())
	cmd.Flags().StringVar(&flagPrayers, "prayers", "", "Comma-separated list of prayers to track (overrides config)")

	return cmd
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)

	// Priority: --prayers flag > config > defaults.
	raw := cfg.Prayers
	if cmd.Flags().Changed("prayers") && flagPrayers != "" {
		raw = flagPrayers
	}
	selected := selectedPrayers(raw)

	site, err := resolveSite(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	next, err := findNext(site, selected)
	if err != nil {
		return err
	}

	t := now().In(site.Location())
	fmt.Fprint(cmd.OutOrStdout(), prayer.FormatOutput(*next, t, flagFormat, goTimeFormat(cfg)))
	return nil
}

// findNext returns the first selected prayer after now, looking into
// tomorrow's schedule once today's are over.
func findNext(site resolvedSite, selected []string) (*prayer.Prayer, error) {
	loc := site.Location()
	t := now().In(loc)
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 2; offset++ {
		date := today.AddDate(0, 0, offset)
		sched, err := prayer.Compute(date, site.Site)
		if err != nil {
			return nil, err
		}
		prayers, err := sched.Prayers(date, loc, selected)
		if err != nil {
			return nil, err
		}
		if next := prayer.NextPrayer(prayers, t); next != nil {
			return next, nil
		}
	}
	return nil, fmt.Errorf("could not determine next prayer")
}
