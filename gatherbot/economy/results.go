package economy

import (
	"fmt"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/cooldown"
	"github.com/disgoorg/gather-bot/gatherbot/economy/yield"
	"github.com/disgoorg/gather-bot/gatherbot/leveling"
)

// Result is embedded in every action outcome. Validation failures and
// cooldown rejections come back as Success false with a Message, never as an
// error.
type Result struct {
	Success bool
	Message string
}

func ok(format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

func fail(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func onCooldown(verb string, d cooldown.Decision) Result {
	return fail("You can %s again in %s.", verb, d)
}

type GatherResult struct {
	Result
	Domain   catalog.Domain
	Tool     catalog.Tool
	Rarity   catalog.Rarity
	Resource catalog.Resource
	Yield    yield.Yield
	Skill    leveling.SkillResult
	// PetHunger is the equipped pet's hunger after the action, -1 with no pet.
	PetHunger int
	Balance   int64
}

type WorkResult struct {
	Result
	Job     catalog.Job
	Yield   yield.Yield
	Skill   leveling.SkillResult
	Balance int64
}

type DailyResult struct {
	Result
	Coins   int64
	Streak  int
	Bonus   int64
	Balance int64
}

type ChallengeResult struct {
	Result
	Challenge catalog.Challenge
	Yield     yield.Yield
	Skill     leveling.SkillResult
	Balance   int64
}

type VoteResult struct {
	Result
	Coins   int64
	XP      int64
	Skill   leveling.SkillResult
	Balance int64
}

type BegResult struct {
	Result
	Coins   int64
	Balance int64
}

type CrimeResult struct {
	Result
	Crime  catalog.Crime
	Caught bool
	// Amount is what was gained, or on a catch what was actually lost.
	Amount  int64
	Balance int64
}

type SearchResult struct {
	Result
	Location catalog.Location
	Coins    int64
	Balance  int64
}

type HatchResult struct {
	Result
	Pet      account.Pet
	Species  catalog.PetSpecies
	Equipped bool
	Balance  int64
}

type FeedResult struct {
	Result
	Pet     account.Pet
	Growth  leveling.PetResult
	Balance int64
}

type EquipPetResult struct {
	Result
	Pet account.Pet
}

type PetsView struct {
	Result
	Pets          []account.Pet
	EquippedPetID *int64
	Coins         int64
}

type ToolResult struct {
	Result
	Tool    catalog.Tool
	Balance int64
}

type ConsumableResult struct {
	Result
	Consumable catalog.ConsumableEffect
	Effect     account.ActiveEffect
	Balance    int64
}

type PrestigeResult struct {
	Result
	Prestige int
	Bonus    float64
	// Requirements for the next tier, filled on failure and success.
	RequiredLevel int
	RequiredCoins int64
}

type SkillView struct {
	Domain    catalog.Domain
	Level     int
	XP        int64
	Threshold int64
}

type EffectView struct {
	Type       catalog.EffectType
	Multiplier float64
	Remaining  time.Duration
}

type CooldownView struct {
	Activity account.Activity
	Ready    bool
	Wait     string
}

type ProfileView struct {
	Result
	Coins         int64
	Prestige      int
	PrestigeBonus float64
	DailyStreak   int
	Skills        []SkillView
	Inventory     map[catalog.Domain]map[string]int64
	Tools         map[catalog.Domain]catalog.Tool
	Effects       []EffectView
	Cooldowns     []CooldownView
	EquippedPet   *account.Pet
	PetCount      int
}
