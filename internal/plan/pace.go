package plan

import (
	"fmt"
	"strings"
)

// Pace selects how many sections one quest covers.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
	PaceCustom Pace = "custom"
)

var paceSections = map[Pace]int{
	PaceSlow:   2,
	PaceNormal: 4,
	PaceFast:   6,
}

// AllPaces returns all paces in display order.
func AllPaces() []Pace {
	return []Pace{PaceSlow, PaceNormal, PaceFast, PaceCustom}
}

// ParsePace converts a case-insensitive name into a Pace.
func ParsePace(s string) (Pace, error) {
	p := Pace(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PaceSlow, PaceNormal, PaceFast, PaceCustom:
		return p, nil
	}
	return "", fmt.Errorf("unknown pace %q (want slow, normal, fast or custom)", s)
}

// DisplayName returns a human-readable pace label.
func (p Pace) DisplayName() string {
	switch p {
	case PaceSlow:
		return "Slow"
	case PaceNormal:
		return "Normal"
	case PaceFast:
		return "Fast"
	case PaceCustom:
		return "Custom"
	default:
		return string(p)
	}
}

// SectionsPerQuest resolves the batch size for a pace. Custom uses the
// caller's value with a floor of 1. Unknown paces fall back to Normal.
func SectionsPerQuest(p Pace, custom int) int {
	if p == PaceCustom {
		return max(custom, 1)
	}
	if n, ok := paceSections[p]; ok {
		return n
	}
	return paceSections[PaceNormal]
}
