package economy

import (
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/cooldown"
)

var (
	workRule      = cooldown.Rule{Activity: account.ActivityWork, Base: time.Hour, Unit: cooldown.Minutes}
	dailyRule     = cooldown.Rule{Activity: account.ActivityDaily, Base: 24 * time.Hour, Unit: cooldown.Hours}
	challengeRule = cooldown.Rule{Activity: account.ActivityChallenge, Base: time.Hour, Unit: cooldown.Minutes}
	voteRule      = cooldown.Rule{Activity: account.ActivityVote, Base: 12 * time.Hour, Unit: cooldown.Hours}
	begRule       = cooldown.Rule{Activity: account.ActivityBeg, Base: 45 * time.Second, Unit: cooldown.Seconds}
	crimeRule     = cooldown.Rule{Activity: account.ActivityCrime, Base: 2 * time.Minute, Unit: cooldown.Seconds}
	searchRule    = cooldown.Rule{Activity: account.ActivitySearch, Base: 30 * time.Second, Unit: cooldown.Seconds}
)

// fixedRules is every non-gathering rule, in profile display order.
var fixedRules = []cooldown.Rule{workRule, dailyRule, challengeRule, voteRule, begRule, crimeRule, searchRule}

var gatherActivities = map[catalog.Domain]account.Activity{
	catalog.Fishing: account.ActivityFish,
	catalog.Mining:  account.ActivityMine,
	catalog.Farming: account.ActivityFarm,
}

// gatherRule is the equipped tool's cooldown, divided by prestige+1.
func gatherRule(d catalog.Domain, tool catalog.Tool) cooldown.Rule {
	return cooldown.Rule{
		Activity:       gatherActivities[d],
		Base:           tool.Cooldown(),
		Unit:           cooldown.Seconds,
		PrestigeScaled: true,
	}
}

const (
	dailyGrace      = 48 * time.Hour
	dailyBase       = 100
	dailyStreakStep = 10
	dailyStreakCap  = 500

	voteCoins = 250
	voteXP    = 100

	begNothingBelow = 0.3
	begSmallBelow   = 0.7
	begSmallMin     = 5
	begSmallMax     = 25
	begLargeMin     = 25
	begLargeMax     = 75

	crimeCatchChance = 0.4

	feedFee    = 50
	feedHunger = 30
	maxHunger  = 100

	prestigeLevelStep = 10
	prestigeCoinStep  = 50_000
)
