package farm

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/talgya/cropwarden/internal/almanac"
	"github.com/talgya/cropwarden/internal/host"
)

// Farm is the demo world. It owns every location and crop and exposes them
// through the host ports.
type Farm struct {
	Day int // 1-based farm day

	locations []*Location
	rng       *rand.Rand
}

// New creates an empty farm starting on the given day.
func New(day int) *Farm {
	return &Farm{Day: day, rng: rand.New(rand.NewSource(1))}
}

// Locations implements host.World.
func (f *Farm) Locations() []host.Location {
	out := make([]host.Location, len(f.locations))
	for i, l := range f.locations {
		out[i] = l
	}
	return out
}

// Season implements host.World.
func (f *Farm) Season() almanac.Season {
	return almanac.SeasonForDay(f.Day)
}

// Date returns the current calendar date for logs and status output.
func (f *Farm) Date() string {
	return almanac.Date(f.Day)
}

// AddLocation adds a named location of size×size feature slots. Protected
// locations grow every variety natively regardless of season (the host's own
// greenhouse behavior, independent of the rule-engine config).
func (f *Farm) AddLocation(name string, size int, protected bool) *Location {
	loc := &Location{
		name:      name,
		size:      size,
		protected: protected,
		features:  make(map[host.Point]host.TerrainFeature),
	}
	f.locations = append(f.locations, loc)
	return loc
}

// processNewDay runs the host's native daily pass: in-season crops grow one
// day, out-of-season crops in unprotected locations die. This is the behavior
// the season rules patch.
func (f *Farm) processNewDay() {
	season := f.Season()
	for _, loc := range f.locations {
		for _, feat := range loc.features {
			plot, ok := feat.(*Plot)
			if !ok || plot.crop == nil {
				continue
			}
			c := plot.crop
			if loc.protected || c.variety.GrowsIn(season) {
				c.growOneDay()
			} else {
				c.growth.Dead = true
			}
		}
	}
}

// plantDaily tills and plants a few new plots across the farm, returning the
// added features keyed by position. Empty on quiet days.
func (f *Farm) plantDaily() map[host.Point]host.TerrainFeature {
	season := f.Season()
	added := make(map[host.Point]host.TerrainFeature)
	for _, loc := range f.locations {
		if f.rng.Float64() > 0.3 {
			continue
		}
		choices := VarietiesFor(season)
		if loc.protected {
			choices = Catalog
		}
		if len(choices) == 0 {
			continue
		}
		for n := 1 + f.rng.Intn(3); n > 0; n-- {
			pt := host.Point{X: f.rng.Intn(loc.size), Y: f.rng.Intn(loc.size)}
			if _, occupied := loc.features[pt]; occupied {
				continue
			}
			plot := loc.Till(pt)
			plot.Plant(choices[f.rng.Intn(len(choices))])
			added[pt] = plot
		}
	}
	if len(added) == 0 {
		return nil
	}
	return added
}

// Location is a named area of the farm.
type Location struct {
	name      string
	size      int
	protected bool
	features  map[host.Point]host.TerrainFeature
}

// Name implements host.Location.
func (l *Location) Name() string { return l.name }

// Features implements host.Location.
func (l *Location) Features() map[host.Point]host.TerrainFeature { return l.features }

// Till places empty soil at a point, replacing whatever was there.
func (l *Location) Till(pt host.Point) *Plot {
	plot := &Plot{}
	l.features[pt] = plot
	return plot
}

// AddObstruction places a non-soil feature (rock, stump) at a point.
func (l *Location) AddObstruction(pt host.Point, kind string) {
	l.features[pt] = &Obstruction{kind: kind}
}

// Plot is tilled soil, possibly holding a crop.
type Plot struct {
	crop *Crop
}

// IsSoil implements host.TerrainFeature.
func (p *Plot) IsSoil() bool { return true }

// Crop implements host.TerrainFeature.
func (p *Plot) Crop() host.Crop {
	if p.crop == nil {
		return nil
	}
	return p.crop
}

// Plant puts a new crop of the given variety in the plot.
func (p *Plot) Plant(v Variety) *Crop {
	p.crop = &Crop{
		id:          uuid.NewString(),
		variety:     v,
		annotations: make(map[string]string),
	}
	return p.crop
}

// Clear removes the crop, leaving empty soil.
func (p *Plot) Clear() { p.crop = nil }

// Obstruction is a non-soil terrain feature.
type Obstruction struct {
	kind string
}

func (o *Obstruction) IsSoil() bool    { return false }
func (o *Obstruction) Crop() host.Crop { return nil }

// Crop is a planted crop owned by the farm.
type Crop struct {
	id          string
	variety     Variety
	growth      host.GrowthState
	annotations map[string]string
}

// ID implements host.Crop.
func (c *Crop) ID() string { return c.id }

// Growth implements host.Crop.
func (c *Crop) Growth() *host.GrowthState { return &c.growth }

// PhaseDays implements host.Crop.
func (c *Crop) PhaseDays() []int { return c.variety.PhaseDays }

// Regrows implements host.Crop.
func (c *Crop) Regrows() bool { return c.variety.Regrows }

// Annotations implements host.Crop.
func (c *Crop) Annotations() map[string]string { return c.annotations }

// Variety returns the crop's catalog entry.
func (c *Crop) Variety() Variety { return c.variety }

// growOneDay is the host's native growth step: one day toward the next
// phase, final phase reached means fully grown.
func (c *Crop) growOneDay() {
	g := &c.growth
	days := c.variety.PhaseDays
	if g.Dead || len(days) == 0 {
		return
	}
	if g.Phase >= len(days)-1 {
		g.FullyGrown = true
		return
	}
	g.DayOfPhase++
	if g.DayOfPhase >= days[g.Phase] {
		g.Phase++
		g.DayOfPhase = 0
	}
	if g.Phase >= len(days)-1 {
		g.FullyGrown = true
	}
}
