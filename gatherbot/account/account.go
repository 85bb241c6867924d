// Package account defines the per-user-per-guild economy record.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/snowflake/v2"
)

// Key identifies an account: one per user per guild.
type Key struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

func NewKey(guildID, userID snowflake.ID) Key {
	return Key{GuildID: guildID, UserID: userID}
}

func (k Key) String() string {
	return k.GuildID.String() + ":" + k.UserID.String()
}

func ParseKey(s string) (Key, error) {
	guild, user, ok := strings.Cut(s, ":")
	if !ok {
		return Key{}, fmt.Errorf("invalid account key %q", s)
	}
	guildID, err := snowflake.Parse(guild)
	if err != nil {
		return Key{}, fmt.Errorf("invalid guild id in key %q: %w", s, err)
	}
	userID, err := snowflake.Parse(user)
	if err != nil {
		return Key{}, fmt.Errorf("invalid user id in key %q: %w", s, err)
	}
	return Key{GuildID: guildID, UserID: userID}, nil
}

type Activity string

const (
	ActivityFish      Activity = "fish"
	ActivityMine      Activity = "mine"
	ActivityFarm      Activity = "farm"
	ActivityWork      Activity = "work"
	ActivityDaily     Activity = "daily"
	ActivityChallenge Activity = "challenge"
	ActivityVote      Activity = "voteReward"
	ActivityBeg       Activity = "beg"
	ActivityCrime     Activity = "crime"
	ActivitySearch    Activity = "search"
)

type Skill struct {
	Level int   `json:"level"`
	XP    int64 `json:"xp"`
}

type Pet struct {
	ID     int64         `json:"id"`
	Type   string        `json:"type"`
	Boost  catalog.Boost `json:"boost"`
	Hunger int           `json:"hunger"`
	XP     int64         `json:"xp"`
	Level  int           `json:"level"`
}

type ActiveEffect struct {
	Type       catalog.EffectType `json:"type"`
	Multiplier float64            `json:"multiplier"`
	Expiry     time.Time          `json:"expiry"`
}

type Account struct {
	Coins         int64                               `json:"coins"`
	Skills        map[catalog.Domain]*Skill           `json:"skills"`
	Inventory     map[catalog.Domain]map[string]int64 `json:"inventory"`
	EquippedTools map[catalog.Domain]string           `json:"equippedTools"`
	OwnedTools    map[catalog.Domain][]string         `json:"ownedTools"`
	Pets          []*Pet                              `json:"pets"`
	EquippedPetID *int64                              `json:"equippedPetId"`
	PetIDCounter  int64                               `json:"petIdCounter"`
	ActiveEffects []ActiveEffect                      `json:"activeEffects"`
	Prestige      int                                 `json:"prestige"`
	LastAction    map[Activity]time.Time              `json:"lastAction"`
	DailyStreak   int                                 `json:"dailyStreak"`
	CreatedAt     time.Time                           `json:"createdAt"`
	UpdatedAt     time.Time                           `json:"updatedAt"`
}

// New builds an account in its full default state: level 1 skills, starter
// tools owned and equipped, nothing else.
func New(cat *catalog.Catalog, now time.Time) *Account {
	a := &Account{CreatedAt: now, UpdatedAt: now}
	a.Normalize(cat)
	return a
}

// Normalize fills in any state missing from a decoded record so older
// documents pick up defaults lazily.
func (a *Account) Normalize(cat *catalog.Catalog) {
	if a.Skills == nil {
		a.Skills = make(map[catalog.Domain]*Skill, len(catalog.SkillDomains))
	}
	for _, d := range catalog.SkillDomains {
		if a.Skills[d] == nil {
			a.Skills[d] = &Skill{Level: 1}
		}
	}
	if a.Inventory == nil {
		a.Inventory = make(map[catalog.Domain]map[string]int64, len(catalog.GatheringDomains))
	}
	if a.EquippedTools == nil {
		a.EquippedTools = make(map[catalog.Domain]string, len(catalog.GatheringDomains))
	}
	if a.OwnedTools == nil {
		a.OwnedTools = make(map[catalog.Domain][]string, len(catalog.GatheringDomains))
	}
	for _, d := range catalog.GatheringDomains {
		if a.Inventory[d] == nil {
			a.Inventory[d] = make(map[string]int64)
		}
		starter := cat.StarterTool(d).ID
		if !a.OwnsTool(d, starter) {
			a.OwnedTools[d] = append([]string{starter}, a.OwnedTools[d]...)
		}
		if a.EquippedTools[d] == "" || !a.OwnsTool(d, a.EquippedTools[d]) {
			a.EquippedTools[d] = starter
		}
	}
	if a.LastAction == nil {
		a.LastAction = make(map[Activity]time.Time)
	}
	if a.EquippedPetID != nil && a.FindPet(*a.EquippedPetID) == nil {
		a.EquippedPetID = nil
	}
}

func (a *Account) Skill(d catalog.Domain) *Skill {
	s := a.Skills[d]
	if s == nil {
		s = &Skill{Level: 1}
		a.Skills[d] = s
	}
	return s
}

// PrestigeBonus is the coin multiplier granted by prestige tiers.
func (a *Account) PrestigeBonus() float64 {
	return 1 + 0.1*float64(a.Prestige)
}

func (a *Account) OwnsTool(d catalog.Domain, id string) bool {
	for _, owned := range a.OwnedTools[d] {
		if owned == id {
			return true
		}
	}
	return false
}

func (a *Account) AddItem(d catalog.Domain, name string, count int64) {
	inv := a.Inventory[d]
	if inv == nil {
		inv = make(map[string]int64)
		a.Inventory[d] = inv
	}
	inv[name] += count
}

func (a *Account) FindPet(id int64) *Pet {
	for _, p := range a.Pets {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// EquippedPet resolves the weak equipped reference, nil when none.
func (a *Account) EquippedPet() *Pet {
	if a.EquippedPetID == nil {
		return nil
	}
	return a.FindPet(*a.EquippedPetID)
}

// Deduct removes coins, flooring the balance at zero. It returns the amount
// actually removed.
func (a *Account) Deduct(amount int64) int64 {
	if amount > a.Coins {
		amount = a.Coins
	}
	a.Coins -= amount
	return amount
}

// EffectsAt prunes expired effects and returns the ones still running.
// Expired entries are dropped without firing anything.
func (a *Account) EffectsAt(now time.Time) []ActiveEffect {
	kept := a.ActiveEffects[:0]
	for _, e := range a.ActiveEffects {
		if e.Expiry.After(now) {
			kept = append(kept, e)
		}
	}
	a.ActiveEffects = kept
	return kept
}
