package warden

import (
	"log/slog"

	"github.com/talgya/cropwarden/internal/almanac"
	"github.com/talgya/cropwarden/internal/config"
	"github.com/talgya/cropwarden/internal/host"
)

// Warden applies the season rules to a host world. It keeps no world state
// between notifications; every sweep re-reads the world graph.
type Warden struct {
	World host.World
	Tags  TagStore
	Cfg   *config.Config

	// Last summarizes the most recent daily sweep. Written on the host's
	// logic thread only.
	Last SweepStats
}

// SweepStats summarizes one daily pass over the world.
type SweepStats struct {
	Season    string `json:"season"`
	Locations int    `json:"locations"`
	Crops     int    `json:"crops"`
	Tagged    int    `json:"tagged"`  // planted-season tags backfilled
	Revived   int    `json:"revived"` // dead flags cleared
	Held      int    `json:"held"`    // regrowable crops held short of harvest
	Skipped   int    `json:"skipped"` // left to the host's winter-kill
}

// New creates a Warden over the given world.
func New(world host.World, tags TagStore, cfg *config.Config) *Warden {
	return &Warden{World: world, Tags: tags, Cfg: cfg}
}

// OnSaveLoaded backfills planted-season tags for every crop already in the
// ground, so the daily sweep never evaluates an untagged crop.
func (w *Warden) OnSaveLoaded() {
	season := w.World.Season()
	tagged := 0
	for _, loc := range w.World.Locations() {
		for _, f := range loc.Features() {
			c := cropIn(f)
			if c == nil {
				continue
			}
			if _, ok := w.Tags.PlantedSeason(c); !ok {
				w.Tags.EnsureTagged(c, season)
				tagged++
			}
		}
	}
	slog.Info("save loaded, crops tagged", "season", season.String(), "backfilled", tagged)
}

// OnDayStarted runs the daily sweep: tag backfill, winter-kill decision,
// survival override, and growth advancement for every crop in every location.
func (w *Warden) OnDayStarted() SweepStats {
	season := w.World.Season()
	st := SweepStats{Season: season.String()}

	for _, loc := range w.World.Locations() {
		st.Locations++
		yearRound := YearRound(loc, w.Cfg)

		for _, f := range loc.Features() {
			c := cropIn(f)
			if c == nil {
				continue
			}
			st.Crops++

			if _, ok := w.Tags.PlantedSeason(c); !ok {
				w.Tags.EnsureTagged(c, season)
				st.Tagged++
			}
			planted, ok := w.Tags.PlantedSeason(c)
			if !ok {
				// Host exposes no annotation map for this crop; nothing
				// to decide on.
				continue
			}
			outOfSeason := planted != season

			// Winter-kill policy: leave the crop entirely to the host.
			if w.Cfg.WinterKillsCrops && season == almanac.Winter && !yearRound {
				st.Skipped++
				continue
			}

			if c.Growth().Dead {
				st.Revived++
			}
			c.Growth().Dead = false

			Advance(c, outOfSeason, yearRound)

			if outOfSeason && c.Regrows() && !yearRound {
				st.Held++
				slog.Debug("crop held out of season",
					"location", loc.Name(),
					"crop", c.ID(),
					"planted", planted.String(),
					"phase", c.Growth().Phase,
				)
			}
		}
	}

	w.Last = st
	slog.Info("daily sweep complete",
		"season", st.Season,
		"locations", st.Locations,
		"crops", st.Crops,
		"tagged", st.Tagged,
		"revived", st.Revived,
		"held", st.Held,
		"skipped", st.Skipped,
	)
	return st
}

// cropIn returns the crop held by a terrain feature, or nil for non-soil
// features and empty soil.
func cropIn(f host.TerrainFeature) host.Crop {
	if f == nil || !f.IsSoil() {
		return nil
	}
	return f.Crop()
}
