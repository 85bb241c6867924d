package rewards

import (
	"testing"

	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

type fixedSource struct {
	floats []float64
	ints   []int
}

func (s *fixedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *fixedSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func Test_rarityFor(t *testing.T) {
	tests := []struct {
		name  string
		draw  float64
		power int
		want  catalog.Rarity
	}{
		{"lowest draw", 0, 1, catalog.Common},
		{"common edge power 1", 61.99, 1, catalog.Common},
		{"rare at power 1", 62, 1, catalog.Rare},
		{"epic at power 1", 88.5, 1, catalog.Epic},
		{"legendary at power 1", 99.7, 1, catalog.Legendary},
		{"mythic at power 0", 99.5, 0, catalog.Mythic},
		// power 10: common 80, rare 40 -> cumulative 120, nothing past rare is reachable
		{"rare absorbs the tail at power 10", 99.99, 10, catalog.Rare},
		// power 20: common alone is 100
		{"common absorbs everything at power 20", 99.99, 20, catalog.Common},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rarityFor(tt.draw, tt.power); got != tt.want {
				t.Errorf("rarityFor(%v, %d) = %s, want %s", tt.draw, tt.power, got, tt.want)
			}
		})
	}
}

func TestRoller_RollRarity_UsesHundredScale(t *testing.T) {
	r := NewRoller(catalog.Default(), &fixedSource{floats: []float64{0.995}})
	if got := r.RollRarity(0); got != catalog.Mythic {
		t.Errorf("RollRarity(0) with draw 99.5 = %s, want mythic", got)
	}
}

func TestRoller_RollResource(t *testing.T) {
	cat := catalog.Default()
	r := NewRoller(cat, &fixedSource{ints: []int{1, 0}})

	got := r.RollResource(catalog.Fishing, catalog.Rare)
	if got.Name != "Trout" {
		t.Errorf("RollResource(rare) = %s, want Trout", got.Name)
	}

	got = r.RollResource(catalog.Fishing, catalog.Rarity("unknown"))
	if got.Name != cat.Resources(catalog.Fishing)[0].Name {
		t.Errorf("fallback resource = %s, want first catalog entry", got.Name)
	}
}

func TestRoller_Between(t *testing.T) {
	r := NewRoller(catalog.Default(), &fixedSource{ints: []int{0, 20, 25}})
	if got := r.Between(5, 25); got != 5 {
		t.Errorf("Between low = %d, want 5", got)
	}
	if got := r.Between(5, 25); got != 25 {
		t.Errorf("Between high = %d, want 25", got)
	}
	// 25 % 21 wraps inside the fixed source; only bounds matter here
	if got := r.Between(5, 25); got < 5 || got > 25 {
		t.Errorf("Between out of range: %d", got)
	}
	if got := r.Between(7, 7); got != 7 {
		t.Errorf("Between degenerate = %d, want 7", got)
	}
}
