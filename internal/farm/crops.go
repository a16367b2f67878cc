// Package farm provides the in-memory demo host: a farm world implementing
// the host ports, with its own native growth and winter behavior for the
// season rules to patch around.
package farm

import "github.com/talgya/cropwarden/internal/almanac"

// Variety describes a plantable crop kind.
type Variety struct {
	Name      string
	PhaseDays []int            // Days per growth phase, in order.
	Regrows   bool             // Produces repeatedly without replanting.
	Seasons   []almanac.Season // Seasons the host grows it natively.
}

// Catalog lists the varieties the demo farm plants.
var Catalog = []Variety{
	{Name: "parsnip", PhaseDays: []int{1, 1, 1, 1}, Seasons: []almanac.Season{almanac.Spring}},
	{Name: "cauliflower", PhaseDays: []int{1, 2, 4, 4, 1}, Seasons: []almanac.Season{almanac.Spring}},
	{Name: "strawberry", PhaseDays: []int{1, 1, 2, 2, 2}, Regrows: true, Seasons: []almanac.Season{almanac.Spring}},
	{Name: "melon", PhaseDays: []int{1, 2, 3, 3, 3}, Seasons: []almanac.Season{almanac.Summer}},
	{Name: "blueberry", PhaseDays: []int{1, 3, 3, 4, 2}, Regrows: true, Seasons: []almanac.Season{almanac.Summer}},
	{Name: "corn", PhaseDays: []int{2, 3, 3, 3, 3}, Regrows: true, Seasons: []almanac.Season{almanac.Summer, almanac.Autumn}},
	{Name: "pumpkin", PhaseDays: []int{1, 2, 3, 4, 3}, Seasons: []almanac.Season{almanac.Autumn}},
	{Name: "cranberry", PhaseDays: []int{1, 2, 1, 1, 2}, Regrows: true, Seasons: []almanac.Season{almanac.Autumn}},
	{Name: "winter-root", PhaseDays: []int{1, 1, 2, 3}, Seasons: []almanac.Season{almanac.Winter}},
}

// GrowsIn reports whether the host natively grows the variety in a season.
func (v Variety) GrowsIn(season almanac.Season) bool {
	for _, s := range v.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// VarietiesFor returns the catalog entries plantable in a season.
func VarietiesFor(season almanac.Season) []Variety {
	var out []Variety
	for _, v := range Catalog {
		if v.GrowsIn(season) {
			out = append(out, v)
		}
	}
	return out
}
