// Farm generation using layered simplex noise: fertility decides which slots
// are tilled and planted, moisture picks the variety.
package farm

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/cropwarden/internal/host"
)

// GenConfig holds farm generation parameters.
type GenConfig struct {
	Seed      int64 // Random seed (0 = random)
	StartDay  int   // 1-based farm day the world begins on
	FieldSize int   // Feature grid edge for the main farm
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		StartDay:  1,
		FieldSize: 24,
	}
}

// SmallTestConfig returns a tiny farm for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Seed:      42,
		StartDay:  1,
		FieldSize: 8,
	}
}

// Generate creates a farm with a seasonal main field, a greenhouse, and the
// island plots, populated deterministically from the seed.
func Generate(cfg GenConfig) *Farm {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	day := cfg.StartDay
	if day < 1 {
		day = 1
	}

	f := New(day)
	f.rng = rand.New(rand.NewSource(seed))

	populate(f.AddLocation("Farm", cfg.FieldSize, false), f, seed)
	populate(f.AddLocation("Greenhouse", cfg.FieldSize/2, true), f, seed+1)
	populate(f.AddLocation("IslandWest", cfg.FieldSize/2, true), f, seed+2)
	populate(f.AddLocation("IslandNorth", cfg.FieldSize/3, true), f, seed+3)

	return f
}

// populate fills a location's grid from two noise layers.
func populate(loc *Location, f *Farm, seed int64) {
	fertility := opensimplex.NewNormalized(seed)
	moisture := opensimplex.NewNormalized(seed + 100)

	choices := VarietiesFor(f.Season())
	if loc.protected {
		choices = Catalog
	}

	for x := 0; x < loc.size; x++ {
		for y := 0; y < loc.size; y++ {
			fx, fy := float64(x)*0.18, float64(y)*0.18
			fert := fertility.Eval2(fx, fy)

			switch {
			case fert > 0.62:
				plot := loc.Till(host.Point{X: x, Y: y})
				if len(choices) > 0 {
					pick := int(moisture.Eval2(fx, fy) * float64(len(choices)))
					if pick >= len(choices) {
						pick = len(choices) - 1
					}
					plot.Plant(choices[pick])
				}
			case fert > 0.5:
				// Tilled, nothing planted yet.
				loc.Till(host.Point{X: x, Y: y})
			case fert < 0.18:
				loc.AddObstruction(host.Point{X: x, Y: y}, "stone")
			}
		}
	}
}
