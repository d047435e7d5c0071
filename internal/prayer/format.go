package prayer

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"
)

// Display modes for a single prayer.
const (
	FormatTimeRemaining      = "time-remaining"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndRemaining   = "name-and-remaining"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameAndRemain = "short-name-and-remaining"
	FormatFull               = "full"
)

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // Ashar
	ShortName string // A
	Time      string // 15:22 or 3:22 PM
	Remaining string // 2h 15m
	Hours     int
	Minutes   int
}

var formatModes = []struct {
	name   string
	render func(FormatData) string
}{
	{FormatTimeRemaining, func(d FormatData) string { return d.Remaining }},
	{FormatNextPrayerTime, func(d FormatData) string { return d.Time }},
	{FormatNameAndTime, func(d FormatData) string { return d.Name + " " + d.Time }},
	{FormatNameAndRemaining, func(d FormatData) string { return d.Name + " " + d.Remaining }},
	{FormatShortNameAndTime, func(d FormatData) string { return d.ShortName + " " + d.Time }},
	{FormatShortNameAndRemain, func(d FormatData) string { return d.ShortName + " " + d.Remaining }},
	{FormatFull, func(d FormatData) string { return fmt.Sprintf("%s %s (%s)", d.Name, d.Time, d.Remaining) }},
}

// FormatModes lists the built-in display modes.
func FormatModes() []string {
	names := make([]string, len(formatModes))
	for i, m := range formatModes {
		names[i] = m.name
	}
	return names
}

// FormatHelp describes the --format flag.
func FormatHelp() string {
	return "Display format: " + strings.Join(FormatModes(), ", ") +
		", or a Go template over .Name .ShortName .Time .Remaining .Hours .Minutes (e.g. '{{.Name}} in {{.Remaining}}')"
}

// NewFormatData collects what a display mode needs about p at now.
// timeFormat is a Go layout such as "15:04" or "3:04 PM".
func NewFormatData(p Prayer, now time.Time, timeFormat string) FormatData {
	d := TimeRemaining(p, now)
	if d < 0 {
		d = 0
	}
	return FormatData{
		Name:      p.Name,
		ShortName: ShortNames[p.Name],
		Time:      p.Time.Format(timeFormat),
		Remaining: FormatRemaining(d),
		Hours:     int(d.Hours()),
		Minutes:   int(d.Minutes()) % 60,
	}
}

// FormatOutput renders p in the given mode. A mode containing "{{" is
// executed as a template over FormatData. Unknown modes fall back to
// name-and-time.
func FormatOutput(p Prayer, now time.Time, mode string, timeFormat string) string {
	data := NewFormatData(p, now, timeFormat)
	if strings.Contains(mode, "{{") {
		return formatCustom(mode, data)
	}
	for _, m := range formatModes {
		if m.name == mode {
			return m.render(data)
		}
	}
	return data.Name + " " + data.Time
}

func formatCustom(tmpl string, data FormatData) string {
	t, err := template.New("format").Parse(tmpl)
	if err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Sprintf("template-err: %v", err)
	}
	return buf.String()
}

// FormatDMS renders degrees as ±D° MM' SS".
func FormatDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
	}
	d, m, s := sexagesimal(math.Abs(deg))
	return fmt.Sprintf("%s%d° %02d' %02d\"", sign, d, m, s)
}

// FormatHMS renders fractional hours as HH:MM:SS.
func FormatHMS(hours float64) string {
	sign := ""
	if hours < 0 {
		sign = "-"
	}
	h, m, s := sexagesimal(math.Abs(hours))
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// sexagesimal splits v into whole units, minutes and rounded seconds.
func sexagesimal(v float64) (int, int, int) {
	whole := math.Floor(v)
	minutes := (v - whole) * 60
	m := math.Floor(minutes)
	s := math.Round((minutes - m) * 60)
	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		whole++
	}
	return int(whole), int(m), int(s)
}
