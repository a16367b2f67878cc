// Package host defines the capability ports through which the crop rules
// observe and mutate the farm world. The rules never hold world state of
// their own; everything here is owned by the host simulation and referenced
// per notification.
package host

import "github.com/talgya/cropwarden/internal/almanac"

// Point identifies a terrain feature slot within a location.
type Point struct {
	X int
	Y int
}

// GrowthState is the mutable per-crop growth data the rules may write.
// Phase always indexes the crop's phase-day schedule; DayOfPhase resets on
// every phase transition.
type GrowthState struct {
	Phase      int
	DayOfPhase int
	Dead       bool
	FullyGrown bool
}

// Crop is a planted crop owned by the host.
type Crop interface {
	// ID is the host's stable identity for this crop.
	ID() string

	// Growth returns the crop's mutable growth counters and flags.
	Growth() *GrowthState

	// PhaseDays is the ordered per-phase duration schedule. Read-only.
	PhaseDays() []int

	// Regrows reports whether the crop produces repeatedly without replanting.
	Regrows() bool

	// Annotations is the host's open-ended string-keyed mod data for this crop.
	Annotations() map[string]string
}

// TerrainFeature is one entry in a location's feature map.
type TerrainFeature interface {
	// IsSoil reports whether the feature is tilled soil.
	IsSoil() bool

	// Crop returns the planted crop, or nil for non-soil features and
	// empty soil.
	Crop() Crop
}

// Location is a named area of the world holding terrain features.
type Location interface {
	Name() string
	Features() map[Point]TerrainFeature
}

// World is the root query port over the host's world graph.
type World interface {
	Locations() []Location
	Season() almanac.Season
}
