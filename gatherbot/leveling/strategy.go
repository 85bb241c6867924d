package leveling

import (
	"math"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

// SkillStrategy levels skills: xp accumulates and every crossed threshold is
// consumed, so one grant can raise several levels and the remainder carries.
type SkillStrategy struct {
	calculator *Calculator
}

func NewSkillStrategy(config *Config) *SkillStrategy {
	return &SkillStrategy{calculator: NewCalculator(config)}
}

func (s *SkillStrategy) Threshold(level int) int64 {
	return s.calculator.Threshold(level)
}

func (s *SkillStrategy) AddXP(skill *account.Skill, amount int64) SkillResult {
	if skill.Level < 1 {
		skill.Level = 1
	}
	if amount > 0 {
		skill.XP += amount
	} else {
		amount = 0
	}

	result := SkillResult{XPGained: amount}
	for {
		threshold := s.calculator.Threshold(skill.Level)
		if skill.XP < threshold {
			break
		}
		skill.XP -= threshold
		skill.Level++
		result.LevelsGained++
	}

	result.NewLevel = skill.Level
	result.CurrentXP = skill.XP
	result.NextThreshold = s.calculator.Threshold(skill.Level)
	return result
}

// PetStrategy levels pets: a feed grants a fixed amount of xp and can raise
// at most one level, after which xp restarts from zero. Any surplus is lost.
type PetStrategy struct {
	config     *Config
	calculator *Calculator
}

func NewPetStrategy(config *Config) *PetStrategy {
	return &PetStrategy{config: config, calculator: NewCalculator(config)}
}

func (p *PetStrategy) Threshold(level int) int64 {
	return p.calculator.Threshold(level)
}

func (p *PetStrategy) Feed(pet *account.Pet) PetResult {
	if pet.Level < 1 {
		pet.Level = 1
	}
	result := PetResult{
		XPGained:    p.config.PetXPPerFeed,
		BoostBefore: pet.Boost,
	}

	pet.XP += p.config.PetXPPerFeed
	if pet.XP >= p.calculator.Threshold(pet.Level) {
		pet.Level++
		pet.XP = 0
		pet.Boost = p.grow(pet.Boost)
		result.LeveledUp = true
	}

	result.NewLevel = pet.Level
	result.CurrentXP = pet.XP
	result.RequiredXP = p.calculator.Threshold(pet.Level)
	result.BoostAfter = pet.Boost
	return result
}

func (p *PetStrategy) grow(b catalog.Boost) catalog.Boost {
	b.Value += p.config.BoostSteps[b.Type]
	if b.Type == catalog.BoostCooldown {
		b.Value = math.Max(b.Value, p.config.CooldownBoostFloor)
	}
	return b
}
