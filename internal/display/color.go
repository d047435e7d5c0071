// Package display renders schedules, calendars and reports for the
// terminal using raw ANSI escape codes.
//
// Colour is on when stdout is a terminal. NO_COLOR (https://no-color.org/)
// and TERM=dumb turn it off, FORCE_COLOR turns it on for piped output.
package display

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// style is an SGR parameter list such as "1;36".
type style string

const (
	styleBold   style = "1"
	styleDim    style = "2"
	styleRed    style = "31"
	styleGreen  style = "32"
	styleYellow style = "33"
	styleCyan   style = "36"
	styleGray   style = "90"
	styleAccent style = "1;36"
)

const (
	esc   = "\033["
	reset = esc + "0m"
)

// enabled is decided once at init and can be overridden with SetEnabled.
var enabled = detect(os.LookupEnv, isTerminal(os.Stdout))

// detect decides the colour state from the environment and whether the
// output is a terminal.
func detect(lookup func(string) (string, bool), tty bool) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, _ := lookup("FORCE_COLOR"); v != "" {
		return true
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return tty
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetEnabled overrides the detected colour state.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether colour output is active.
func Enabled() bool {
	return enabled
}

func paint(s style, text string) string {
	if !enabled || text == "" {
		return text
	}
	return esc + string(s) + "m" + text + reset
}

func Bold(text string) string   { return paint(styleBold, text) }
func Dim(text string) string    { return paint(styleDim, text) }
func Red(text string) string    { return paint(styleRed, text) }
func Green(text string) string  { return paint(styleGreen, text) }
func Yellow(text string) string { return paint(styleYellow, text) }
func Cyan(text string) string   { return paint(styleCyan, text) }
func Gray(text string) string   { return paint(styleGray, text) }

// Accent marks the next prayer and today in tables and calendars.
func Accent(text string) string { return paint(styleAccent, text) }

// Boldf formats and bolds a string.
func Boldf(format string, a ...any) string {
	return Bold(fmt.Sprintf(format, a...))
}

// Width is the number of runes s occupies on screen, escape sequences
// excluded.
func Width(s string) int {
	if !strings.Contains(s, esc) {
		return utf8.RuneCountInString(s)
	}
	n := 0
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], esc) {
			j := strings.IndexByte(s[i:], 'm')
			if j < 0 {
				break
			}
			i += j + 1
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}
