package warden

import "github.com/talgya/cropwarden/internal/host"

// Advance applies one day of season policy to a crop's growth counters.
//
// In season the host's own growth logic stays authoritative: the only write
// is promoting a crop sitting on its final phase to fully grown. Out of
// season the crop receives one virtual day of growth so it keeps visibly
// developing, with completed phases rolled over. Regrowable crops outside
// year-round locations are held at the last growing phase so they never
// present as harvest-ready while out of season.
func Advance(c host.Crop, outOfSeason, yearRound bool) {
	g := c.Growth()
	days := c.PhaseDays()
	if len(days) == 0 {
		return
	}

	if !outOfSeason {
		if g.Phase >= len(days)-1 {
			g.FullyGrown = true
		}
		return
	}

	// One virtual day, then roll completed phases forward. Each iteration
	// strictly reduces DayOfPhase, so the loop terminates with DayOfPhase
	// below the current phase duration.
	g.DayOfPhase++
	for g.Phase < len(days) && g.DayOfPhase >= days[g.Phase] {
		g.DayOfPhase -= days[g.Phase]
		g.Phase++
	}

	if c.Regrows() && !yearRound {
		if held := len(days) - 2; held >= 0 && g.Phase > held {
			g.Phase = held
			g.DayOfPhase = 0
		}
		g.FullyGrown = false
		return
	}

	if g.Phase >= len(days) {
		// The final phase completed out of season. Hold the index in range
		// and treat the crop as matured.
		g.Phase = len(days) - 1
		g.DayOfPhase = 0
		g.FullyGrown = true
		return
	}

	g.FullyGrown = false
}
