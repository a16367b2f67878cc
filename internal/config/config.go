// Package config loads the rule-engine configuration. The file format is the
// host's JSON mod-config convention; environment variables override file
// values for deployment tweaks without touching the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the season-rule settings. Immutable after Load.
type Config struct {
	// YearRoundLocations names locations exempt from seasonal growth
	// restrictions. Matched case-insensitively.
	YearRoundLocations []string `json:"YearRoundLocations" env:"CROPWARDEN_YEAR_ROUND_LOCATIONS" envSeparator:","`

	// WinterKillsCrops leaves the host's native winter-kill untouched in
	// seasonal locations instead of forcing crop survival.
	WinterKillsCrops bool `json:"WinterKillsCrops" env:"CROPWARDEN_WINTER_KILLS_CROPS"`

	DebugLogging bool `json:"DebugLogging" env:"CROPWARDEN_DEBUG_LOGGING"`

	yearRound map[string]struct{} // lowercased lookup set
}

// Default returns the stock configuration.
func Default() *Config {
	cfg := &Config{
		YearRoundLocations: []string{"Greenhouse", "IslandWest", "IslandNorth", "IslandFarm"},
	}
	cfg.index()
	return cfg
}

// Load reads the JSON config at path, applies environment overrides, and
// returns the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run without a config file: defaults apply.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config environment: %w", err)
	}

	cfg.index()
	return cfg, nil
}

// IsYearRound reports whether a location name is on the year-round list.
func (c *Config) IsYearRound(name string) bool {
	_, ok := c.yearRound[strings.ToLower(name)]
	return ok
}

func (c *Config) index() {
	c.yearRound = make(map[string]struct{}, len(c.YearRoundLocations))
	for _, name := range c.YearRoundLocations {
		c.yearRound[strings.ToLower(name)] = struct{}{}
	}
}
