// Package warden implements the season rules patched over the farm host:
// planted-season tagging, out-of-season survival, and manual growth-phase
// advancement that holds regrowable crops short of harvest-ready until their
// planted season returns.
package warden

import (
	"github.com/talgya/cropwarden/internal/almanac"
	"github.com/talgya/cropwarden/internal/host"
)

// plantedSeasonKey is the annotation key recording the season a crop was
// planted in. Written once per crop and never rewritten.
const plantedSeasonKey = "cropwarden/PlantedSeason"

// TagStore records the planted season of crops.
type TagStore interface {
	// EnsureTagged records season for the crop unless a tag already exists.
	EnsureTagged(c host.Crop, season almanac.Season)

	// PlantedSeason returns the recorded tag, if any.
	PlantedSeason(c host.Crop) (almanac.Season, bool)
}

// AnnotationStore keeps planted-season tags in the crop's own annotation map,
// so the host persists them with its save data.
type AnnotationStore struct{}

func (AnnotationStore) EnsureTagged(c host.Crop, season almanac.Season) {
	ann := c.Annotations()
	if ann == nil {
		return
	}
	if _, ok := ann[plantedSeasonKey]; ok {
		return
	}
	ann[plantedSeasonKey] = season.String()
}

func (AnnotationStore) PlantedSeason(c host.Crop) (almanac.Season, bool) {
	ann := c.Annotations()
	if ann == nil {
		return 0, false
	}
	return almanac.ParseSeason(ann[plantedSeasonKey])
}
