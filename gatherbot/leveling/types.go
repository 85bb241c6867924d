package leveling

import "github.com/disgoorg/gather-bot/gatherbot/catalog"

type SkillResult struct {
	XPGained      int64
	LevelsGained  int
	NewLevel      int
	CurrentXP     int64
	NextThreshold int64
}

func (r SkillResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

type PetResult struct {
	XPGained    int64
	LeveledUp   bool
	NewLevel    int
	CurrentXP   int64
	RequiredXP  int64
	BoostBefore catalog.Boost
	BoostAfter  catalog.Boost
}
