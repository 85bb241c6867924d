// Package rewards picks what a gathering action yields: a rarity tier first,
// then a concrete resource within that tier.
package rewards

import (
	"math/rand"

	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

// Source is the randomness the roller draws from.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n).
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

// DefaultSource draws from math/rand's goroutine-safe global generator.
func DefaultSource() Source {
	return globalSource{}
}

// Band is one rarity tier's weight as a function of tool power.
type Band struct {
	Rarity catalog.Rarity
	Base   float64
	Slope  float64
}

func (b Band) Weight(power int) float64 {
	return b.Base + b.Slope*float64(power)
}

// Bands are evaluated in this order. Weights are not normalised: once the
// earlier bands sum past 100 the later ones can no longer be drawn.
var Bands = []Band{
	{Rarity: catalog.Common, Base: 60, Slope: 2},
	{Rarity: catalog.Rare, Base: 25, Slope: 1.5},
	{Rarity: catalog.Epic, Base: 10, Slope: 1},
	{Rarity: catalog.Legendary, Base: 4, Slope: 0.5},
	{Rarity: catalog.Mythic, Base: 1, Slope: 0.3},
}

type Roller struct {
	catalog *catalog.Catalog
	src     Source
}

func NewRoller(cat *catalog.Catalog, src Source) *Roller {
	if src == nil {
		src = DefaultSource()
	}
	return &Roller{catalog: cat, src: src}
}

// RollRarity draws once in [0,100) and returns the first band whose
// cumulative weight exceeds the draw, or Common when none does.
func (r *Roller) RollRarity(power int) catalog.Rarity {
	return rarityFor(r.src.Float64()*100, power)
}

func rarityFor(draw float64, power int) catalog.Rarity {
	cumulative := 0.0
	for _, b := range Bands {
		cumulative += b.Weight(power)
		if draw < cumulative {
			return b.Rarity
		}
	}
	return catalog.Common
}

// RollResource picks uniformly among the domain's resources of the given
// rarity, falling back to the domain's first resource.
func (r *Roller) RollResource(d catalog.Domain, rarity catalog.Rarity) catalog.Resource {
	all := r.catalog.Resources(d)
	var pool []catalog.Resource
	for _, res := range all {
		if res.Rarity == rarity {
			pool = append(pool, res)
		}
	}
	if len(pool) == 0 {
		if len(all) == 0 {
			return catalog.Resource{}
		}
		return all[0]
	}
	return pool[r.src.Intn(len(pool))]
}

// Pick returns a uniform index into a list of n items.
func (r *Roller) Pick(n int) int {
	return r.src.Intn(n)
}

// Chance reports whether a single draw lands below p.
func (r *Roller) Chance(p float64) bool {
	return r.src.Float64() < p
}

// Draw exposes a raw [0,1) draw for banded outcomes.
func (r *Roller) Draw() float64 {
	return r.src.Float64()
}

// Between returns an integer in [lo,hi] inclusive.
func (r *Roller) Between(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(r.src.Intn(int(hi-lo+1)))
}
