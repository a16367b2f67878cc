package warden

import (
	"log/slog"

	"github.com/talgya/cropwarden/internal/host"
)

// OnTerrainChanged tags crops in newly added soil with the season active at
// the moment of the notification, ahead of the next daily backfill. The host
// may deliver a nil added set; that is a no-op. Returns the number of crops
// newly tagged; re-delivered features that already carry a tag don't count.
func (w *Warden) OnTerrainChanged(added map[host.Point]host.TerrainFeature) int {
	if added == nil {
		return 0
	}
	season := w.World.Season()
	tagged := 0
	for _, f := range added {
		c := cropIn(f)
		if c == nil {
			continue
		}
		if _, ok := w.Tags.PlantedSeason(c); ok {
			continue
		}
		w.Tags.EnsureTagged(c, season)
		tagged++
	}
	if tagged > 0 {
		slog.Debug("new plantings tagged", "season", season.String(), "crops", tagged)
	}
	return tagged
}
