package warden

import (
	"github.com/talgya/cropwarden/internal/config"
	"github.com/talgya/cropwarden/internal/host"
)

// YearRound reports whether seasonal growth restrictions are lifted for a
// location. A nil location is never year-round.
func YearRound(loc host.Location, cfg *config.Config) bool {
	if loc == nil {
		return false
	}
	return cfg.IsYearRound(loc.Name())
}
