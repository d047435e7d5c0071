package ijtima

import "math"

// Threshold is one breakpoint of a ThresholdTable.
type Threshold struct {
	Limit float64
	Value float64
}

// ThresholdTable is a list of breakpoints in ascending order.
type ThresholdTable []Threshold

// Find returns the value of the first breakpoint whose limit is at or
// above v, or 0 when v is past the last one.
func (t ThresholdTable) Find(v float64) float64 {
	for _, th := range t {
		if v <= th.Limit {
			return th.Value
		}
	}
	return 0
}

// Beyond reports whether v is past the last breakpoint.
func (t ThresholdTable) Beyond(v float64) bool {
	return len(t) == 0 || v > t[len(t)-1].Limit
}

// sequence builds a table keyed 1, 2, 3, ...
func sequence(values ...float64) ThresholdTable {
	t := make(ThresholdTable, len(values))
	for i, v := range values {
		t[i] = Threshold{Limit: float64(i + 1), Value: v}
	}
	return t
}

// FlatTable holds one value per integer degree.
type FlatTable []float64

// At returns the entry at ceil(v), clamped into the table.
func (t FlatTable) At(v float64) float64 {
	i := int(math.Ceil(v))
	if i < 0 {
		i = 0
	}
	if i >= len(t) {
		i = len(t) - 1
	}
	return t[i]
}

// Band is one band of a BandTable, covering values from Min upwards.
type Band struct {
	Min   float64
	Value float64
}

// BandFallback picks what a BandTable returns when no band matches.
type BandFallback int

const (
	FallbackZero BandFallback = iota
	FallbackLast
)

// BandTable is a list of bands in descending order of Min.
type BandTable struct {
	Bands    []Band
	Fallback BandFallback
}

// Find returns the value of the first band with Min at or below v.
func (t BandTable) Find(v float64) float64 {
	for _, b := range t.Bands {
		if v >= b.Min {
			return b.Value
		}
	}
	if t.Fallback == FallbackLast && len(t.Bands) > 0 {
		return t.Bands[len(t.Bands)-1].Value
	}
	return 0
}
