// Package catalog holds the static game data: tools, resources, pets, eggs,
// consumables and the fixed activity tables. It is built once per process and
// never mutated afterwards.
package catalog

import (
	"sync"
	"time"
)

type Domain string

const (
	Fishing Domain = "fishing"
	Mining  Domain = "mining"
	Farming Domain = "farming"
	Work    Domain = "work"
)

// GatheringDomains have tools, inventories and rarity rolls.
var GatheringDomains = []Domain{Fishing, Mining, Farming}

// SkillDomains carry a level and xp on every account.
var SkillDomains = []Domain{Fishing, Mining, Farming, Work}

type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
	Mythic    Rarity = "mythic"
)

type BoostType string

const (
	BoostCoins    BoostType = "coins"
	BoostXP       BoostType = "xp"
	BoostRarity   BoostType = "rarity"
	BoostCooldown BoostType = "cooldown"
)

type EffectType string

const (
	EffectCoins EffectType = "coins"
	EffectXP    EffectType = "xp"
)

type Tool struct {
	ID         string
	Name       string
	Domain     Domain
	Power      int
	Efficiency float64
	Multiplier float64
	Rarity     Rarity
	Price      int64
	CooldownMs int64
}

func (t Tool) Cooldown() time.Duration {
	return time.Duration(t.CooldownMs) * time.Millisecond
}

type Resource struct {
	Name   string
	Emoji  string
	Value  int64
	XP     int64
	Rarity Rarity
}

type Boost struct {
	Type  BoostType `json:"type"`
	Value float64   `json:"value"`
}

type PetSpecies struct {
	ID         string
	Name       string
	Emoji      string
	Rarity     Rarity
	Boost      Boost
	BaseHunger int
}

type Egg struct {
	ID             string
	Name           string
	Price          int64
	AllowedSpecies []string
}

type ConsumableEffect struct {
	ID         string
	Name       string
	EffectType EffectType
	Multiplier float64
	DurationMs int64
	Price      int64
}

func (c ConsumableEffect) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// Job is one of the fixed work shifts.
type Job struct {
	Name  string
	Emoji string
	Value int64
	XP    int64
}

type Challenge struct {
	Tier  string
	Name  string
	Coins int64
	XP    int64
}

type Crime struct {
	Name      string
	RewardMin int64
	RewardMax int64
	FailMin   int64
	FailMax   int64
}

// Location is a search spot. Message takes the found amount as its only verb.
type Location struct {
	ID      string
	Name    string
	Min     int64
	Max     int64
	Message string
}

type Catalog struct {
	tools        map[string]Tool
	toolOrder    map[Domain][]string
	starterTools map[Domain]string
	resources    map[Domain][]Resource

	species     map[string]PetSpecies
	eggs        map[string]Egg
	eggOrder    []string
	effects     map[string]ConsumableEffect
	effectOrder []string

	jobs          []Job
	challenges    []Challenge
	crimes        []Crime
	locations     map[string]Location
	locationOrder []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = build()
	})
	return defaultCatalog
}

func build() *Catalog {
	c := &Catalog{
		tools:        make(map[string]Tool),
		toolOrder:    make(map[Domain][]string),
		starterTools: make(map[Domain]string),
		resources:    make(map[Domain][]Resource),
		species:      make(map[string]PetSpecies),
		eggs:         make(map[string]Egg),
		effects:      make(map[string]ConsumableEffect),
		locations:    make(map[string]Location),
	}

	for _, t := range toolTable {
		c.tools[t.ID] = t
		if len(c.toolOrder[t.Domain]) == 0 {
			c.starterTools[t.Domain] = t.ID
		}
		c.toolOrder[t.Domain] = append(c.toolOrder[t.Domain], t.ID)
	}
	for d, rs := range resourceTable {
		c.resources[d] = append([]Resource(nil), rs...)
	}
	for _, s := range speciesTable {
		c.species[s.ID] = s
	}
	for _, e := range eggTable {
		c.eggs[e.ID] = e
		c.eggOrder = append(c.eggOrder, e.ID)
	}
	for _, e := range effectTable {
		c.effects[e.ID] = e
		c.effectOrder = append(c.effectOrder, e.ID)
	}
	for _, l := range locationTable {
		c.locations[l.ID] = l
		c.locationOrder = append(c.locationOrder, l.ID)
	}
	c.jobs = append([]Job(nil), jobTable...)
	c.challenges = append([]Challenge(nil), challengeTable...)
	c.crimes = append([]Crime(nil), crimeTable...)
	return c
}

func (c *Catalog) Tool(id string) (Tool, bool) {
	t, ok := c.tools[id]
	return t, ok
}

// ToolsFor lists a domain's tools from the starter tier upwards.
func (c *Catalog) ToolsFor(d Domain) []Tool {
	ids := c.toolOrder[d]
	out := make([]Tool, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tools[id])
	}
	return out
}

// StarterTool is the free tool every new account owns and equips.
func (c *Catalog) StarterTool(d Domain) Tool {
	return c.tools[c.starterTools[d]]
}

// Resources returns the domain's resource list in catalog order.
func (c *Catalog) Resources(d Domain) []Resource {
	return c.resources[d]
}

func (c *Catalog) Species(id string) (PetSpecies, bool) {
	s, ok := c.species[id]
	return s, ok
}

func (c *Catalog) Egg(id string) (Egg, bool) {
	e, ok := c.eggs[id]
	return e, ok
}

func (c *Catalog) Eggs() []Egg {
	out := make([]Egg, 0, len(c.eggOrder))
	for _, id := range c.eggOrder {
		out = append(out, c.eggs[id])
	}
	return out
}

func (c *Catalog) Consumable(id string) (ConsumableEffect, bool) {
	e, ok := c.effects[id]
	return e, ok
}

func (c *Catalog) Consumables() []ConsumableEffect {
	out := make([]ConsumableEffect, 0, len(c.effectOrder))
	for _, id := range c.effectOrder {
		out = append(out, c.effects[id])
	}
	return out
}

func (c *Catalog) Jobs() []Job             { return c.jobs }
func (c *Catalog) Challenges() []Challenge { return c.challenges }
func (c *Catalog) Crimes() []Crime         { return c.crimes }

func (c *Catalog) Location(id string) (Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

func (c *Catalog) Locations() []Location {
	out := make([]Location, 0, len(c.locationOrder))
	for _, id := range c.locationOrder {
		out = append(out, c.locations[id])
	}
	return out
}
