// Package almanac provides the season calendar shared by the farm host and
// the crop rules.
package almanac

import (
	"fmt"
	"strings"
)

// Season of the farm year.
type Season uint8

const (
	Spring Season = 0
	Summer Season = 1
	Autumn Season = 2
	Winter Season = 3
)

// DaysPerSeason is the length of one season in farm days.
const DaysPerSeason = 28

// String returns the lowercase season name used in tags and logs.
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// ParseSeason parses a season name case-insensitively.
func ParseSeason(name string) (Season, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "autumn", "fall":
		return Autumn, true
	case "winter":
		return Winter, true
	}
	return Spring, false
}

// SeasonForDay returns the season containing a 1-based farm day.
func SeasonForDay(day int) Season {
	if day < 1 {
		day = 1
	}
	return Season(((day - 1) / DaysPerSeason) % 4)
}

// Date renders a 1-based farm day as a human-readable calendar date.
func Date(day int) string {
	if day < 1 {
		day = 1
	}
	d := (day-1)%DaysPerSeason + 1
	year := (day-1)/(DaysPerSeason*4) + 1
	return fmt.Sprintf("%s %d, year %d", SeasonForDay(day), d, year)
}
