package warden

import (
	"testing"

	"github.com/talgya/cropwarden/internal/almanac"
	"github.com/talgya/cropwarden/internal/farm"
)

func TestAnnotationStoreFirstWriteWins(t *testing.T) {
	c := testCrop([]int{1, 1}, false)
	store := AnnotationStore{}

	if _, ok := store.PlantedSeason(c); ok {
		t.Fatal("fresh crop should be untagged")
	}

	store.EnsureTagged(c, almanac.Spring)
	store.EnsureTagged(c, almanac.Winter)

	season, ok := store.PlantedSeason(c)
	if !ok || season != almanac.Spring {
		t.Errorf("expected spring, got %v ok=%v", season, ok)
	}
}

func TestAnnotationStoreSurvivesHostRoundTrip(t *testing.T) {
	// The tag travels in the crop's own annotation map, so the value must be
	// a plain parseable string.
	plot := &farm.Plot{}
	c := plot.Plant(farm.Variety{Name: "test", PhaseDays: []int{1}})
	AnnotationStore{}.EnsureTagged(c, almanac.Autumn)

	raw := c.Annotations()["cropwarden/PlantedSeason"]
	if season, ok := almanac.ParseSeason(raw); !ok || season != almanac.Autumn {
		t.Errorf("annotation %q does not parse back to autumn", raw)
	}
}
