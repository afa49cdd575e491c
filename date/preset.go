package date

import (
	"fmt"
	"strings"
)

// Preset is a named relative window, like "1y", resolved against one known
// bound of a Range.
type Preset string

const (
	OneWeek    Preset = "1w"
	TwoWeeks   Preset = "2w"
	OneMonth   Preset = "1m"
	TwoMonths  Preset = "2m"
	ThreeMonth Preset = "3m"
	SixMonths  Preset = "6m"
	OneYear    Preset = "1y"
	TwoYears   Preset = "2y"
	ThreeYears Preset = "3y"
	FourYears  Preset = "4y"
	FiveYears  Preset = "5y"
)

// presetDays is the fixed length, in days, of every known preset.
var presetDays = map[Preset]int{
	OneWeek:    7,
	TwoWeeks:   14,
	OneMonth:   30,
	TwoMonths:  60,
	ThreeMonth: 91,
	SixMonths:  182,
	OneYear:    365,
	TwoYears:   730,
	ThreeYears: 1095,
	FourYears:  1460,
	FiveYears:  1825,
}

// Presets lists all known presets from the shortest to the longest.
func Presets() []Preset {
	return []Preset{OneWeek, TwoWeeks, OneMonth, TwoMonths, ThreeMonth, SixMonths, OneYear, TwoYears, ThreeYears, FourYears, FiveYears}
}

// ParsePreset returns the preset named p.
func ParsePreset(p string) (Preset, error) {
	preset := Preset(strings.ToLower(strings.TrimSpace(p)))
	if _, ok := presetDays[preset]; !ok {
		return "", fmt.Errorf("unknown period %q", p)
	}
	return preset, nil
}

// Days returns the length of the preset, or 0 for an unknown preset.
func (p Preset) Days() int { return presetDays[p] }

// Before returns the day that is the preset length before d.
func (p Preset) Before(d Date) Date { return d.Add(-p.Days()) }

// After returns the day that is the preset length after d.
func (p Preset) After(d Date) Date { return d.Add(p.Days()) }

func (p Preset) String() string { return string(p) }
