package catalog

import "testing"

func TestDefault_StarterTools(t *testing.T) {
	c := Default()

	tests := []struct {
		domain Domain
		want   string
	}{
		{Fishing, "basic_rod"},
		{Mining, "basic_pickaxe"},
		{Farming, "basic_hoe"},
	}
	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			got := c.StarterTool(tt.domain)
			if got.ID != tt.want {
				t.Errorf("StarterTool(%s) = %s, want %s", tt.domain, got.ID, tt.want)
			}
			if got.Price != 0 {
				t.Errorf("StarterTool(%s) price = %d, want 0", tt.domain, got.Price)
			}
		})
	}
}

func TestDefault_BasicRod(t *testing.T) {
	rod, ok := Default().Tool("basic_rod")
	if !ok {
		t.Fatal("basic_rod missing")
	}
	if rod.Power != 1 || rod.Multiplier != 1 || rod.CooldownMs != 10000 {
		t.Errorf("basic_rod = %+v", rod)
	}
}

func TestDefault_Integrity(t *testing.T) {
	c := Default()

	for _, d := range GatheringDomains {
		if len(c.Resources(d)) == 0 {
			t.Errorf("domain %s has no resources", d)
		}
		for _, tool := range c.ToolsFor(d) {
			if tool.Domain != d {
				t.Errorf("tool %s listed under %s but belongs to %s", tool.ID, d, tool.Domain)
			}
		}
	}

	for _, egg := range c.Eggs() {
		if len(egg.AllowedSpecies) == 0 {
			t.Errorf("egg %s has no species", egg.ID)
		}
		for _, id := range egg.AllowedSpecies {
			if _, ok := c.Species(id); !ok {
				t.Errorf("egg %s references unknown species %s", egg.ID, id)
			}
		}
	}

	common, ok := c.Egg("common_egg")
	if !ok || common.Price != 500 || common.AllowedSpecies[0] != "turtle" {
		t.Errorf("common_egg = %+v", common)
	}

	if len(c.Jobs()) != 5 || len(c.Challenges()) != 5 || len(c.Crimes()) != 4 {
		t.Errorf("fixed tables: jobs=%d challenges=%d crimes=%d", len(c.Jobs()), len(c.Challenges()), len(c.Crimes()))
	}
	for _, l := range c.Locations() {
		if l.Min > l.Max {
			t.Errorf("location %s has min %d > max %d", l.ID, l.Min, l.Max)
		}
	}
}

func TestSuggest(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		got   []Suggestion
		first string
	}{
		{"egg by prefix", c.SuggestEggs("leg"), "legendary_egg"},
		{"location by name", c.SuggestLocations("dump"), "dumpster"},
		{"tool by fragment", c.SuggestTools("mythril"), "mythril_pickaxe"},
		{"consumable", c.SuggestConsumables("scholar"), "scholar_tonic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) == 0 {
				t.Fatal("no suggestions")
			}
			if tt.got[0].ID != tt.first {
				t.Errorf("first suggestion = %s, want %s", tt.got[0].ID, tt.first)
			}
		})
	}

	if got := c.SuggestLocations(""); len(got) != len(c.Locations()) {
		t.Errorf("empty query returned %d locations, want %d", len(got), len(c.Locations()))
	}
}
