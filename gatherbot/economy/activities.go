package economy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/yield"
)

func (e *Engine) PerformWork(ctx context.Context, key account.Key) (WorkResult, error) {
	var res WorkResult
	err := e.withAccount(ctx, key, "work", func(a *account.Account, now time.Time) bool {
		if d := workRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("work", d)
			return false
		}

		jobs := e.catalog.Jobs()
		job := jobs[e.roller.Pick(len(jobs))]
		y := e.fixedYield(a, job.Value, job.XP, now)

		a.Coins += y.Coins
		res.Skill = e.grantSkillXP(a, catalog.Work, y.XP)
		res.Job = job
		res.Yield = y
		res.Balance = a.Coins
		res.Result = ok("%s You worked as a %s and earned %d coins and %d xp.", job.Emoji, job.Name, y.Coins, y.XP)
		return true
	})
	return res, err
}

func (e *Engine) PerformChallenge(ctx context.Context, key account.Key) (ChallengeResult, error) {
	var res ChallengeResult
	err := e.withAccount(ctx, key, "challenge", func(a *account.Account, now time.Time) bool {
		if d := challengeRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("take a challenge", d)
			return false
		}

		challenges := e.catalog.Challenges()
		c := challenges[e.roller.Pick(len(challenges))]
		y := e.fixedYield(a, c.Coins, c.XP, now)

		a.Coins += y.Coins
		res.Skill = e.grantSkillXP(a, catalog.Work, y.XP)
		res.Challenge = c
		res.Yield = y
		res.Balance = a.Coins
		res.Result = ok("You completed the %s challenge %q for %d coins and %d xp.", c.Tier, c.Name, y.Coins, y.XP)
		return true
	})
	return res, err
}

// fixedYield runs a tool-less payout through the yield stages.
func (e *Engine) fixedYield(a *account.Account, coins, xp int64, now time.Time) yield.Yield {
	return yield.Calculate(yield.Input{
		Value:          coins,
		XP:             xp,
		ToolMultiplier: 1,
		PrestigeBonus:  a.PrestigeBonus(),
		Pet:            a.EquippedPet(),
		Effects:        a.EffectsAt(now),
	})
}

// ClaimDaily pays 100 plus the streak bonus. A claim within 48h of the
// previous one extends the streak; anything later restarts it at 1.
func (e *Engine) ClaimDaily(ctx context.Context, key account.Key) (DailyResult, error) {
	var res DailyResult
	err := e.withAccount(ctx, key, "daily", func(a *account.Account, now time.Time) bool {
		last := a.LastAction[account.ActivityDaily]
		if d := dailyRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("claim your daily reward", d)
			return false
		}

		if last.IsZero() || now.Sub(last) > dailyGrace {
			a.DailyStreak = 1
		} else {
			a.DailyStreak++
		}
		bonus := min(int64(a.DailyStreak)*dailyStreakStep, dailyStreakCap)
		coins := dailyBase + bonus
		a.Coins += coins

		res.Coins = coins
		res.Bonus = bonus
		res.Streak = a.DailyStreak
		res.Balance = a.Coins
		res.Result = ok("You claimed %d coins (%d streak bonus). Streak: %d day(s).", coins, bonus, a.DailyStreak)
		return true
	})
	return res, err
}

func (e *Engine) ClaimVoteReward(ctx context.Context, key account.Key) (VoteResult, error) {
	var res VoteResult
	err := e.withAccount(ctx, key, "vote", func(a *account.Account, now time.Time) bool {
		if d := voteRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("claim a vote reward", d)
			return false
		}

		a.Coins += voteCoins
		res.Skill = e.grantSkillXP(a, catalog.Work, voteXP)
		res.Coins = voteCoins
		res.XP = voteXP
		res.Balance = a.Coins
		res.Result = ok("Thanks for voting! You received %d coins and %d xp.", voteCoins, voteXP)
		return true
	})
	return res, err
}

func (e *Engine) Beg(ctx context.Context, key account.Key) (BegResult, error) {
	var res BegResult
	err := e.withAccount(ctx, key, "beg", func(a *account.Account, now time.Time) bool {
		if d := begRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("beg", d)
			return false
		}

		draw := e.roller.Draw()
		switch {
		case draw < begNothingBelow:
			res.Result = ok("Nobody gave you anything. Try again later.")
		case draw < begSmallBelow:
			res.Coins = e.roller.Between(begSmallMin, begSmallMax)
			res.Result = ok("A passerby tossed you %d coins.", res.Coins)
		default:
			res.Coins = e.roller.Between(begLargeMin, begLargeMax)
			res.Result = ok("Someone felt generous and handed you %d coins!", res.Coins)
		}
		a.Coins += res.Coins
		res.Balance = a.Coins
		return true
	})
	return res, err
}

// Crime picks a crime at random. On a catch the fine is taken from the
// balance, which never drops below zero.
func (e *Engine) Crime(ctx context.Context, key account.Key) (CrimeResult, error) {
	var res CrimeResult
	err := e.withAccount(ctx, key, "crime", func(a *account.Account, now time.Time) bool {
		if d := crimeRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("commit a crime", d)
			return false
		}

		crimes := e.catalog.Crimes()
		c := crimes[e.roller.Pick(len(crimes))]
		res.Crime = c

		if e.roller.Chance(crimeCatchChance) {
			res.Caught = true
			res.Amount = a.Deduct(e.roller.Between(c.FailMin, c.FailMax))
			res.Result = ok("You were caught during a %s attempt and paid a %d coin fine.", strings.ToLower(c.Name), res.Amount)
		} else {
			res.Amount = e.roller.Between(c.RewardMin, c.RewardMax)
			a.Coins += res.Amount
			res.Result = ok("Your %s went unnoticed. You made off with %d coins.", strings.ToLower(c.Name), res.Amount)
		}
		res.Balance = a.Coins
		return true
	})
	return res, err
}

// Search looks through a named location. An unknown location is rejected
// before the cooldown is consulted.
func (e *Engine) Search(ctx context.Context, key account.Key, locationID string) (SearchResult, error) {
	var res SearchResult
	loc, found := e.catalog.Location(locationID)
	if !found {
		res.Result = fail("Unknown location %q.", locationID)
		return res, nil
	}

	err := e.withAccount(ctx, key, "search", func(a *account.Account, now time.Time) bool {
		if d := searchRule.Admit(a, now); !d.Allowed {
			res.Result = onCooldown("search", d)
			return false
		}

		coins := e.roller.Between(loc.Min, loc.Max)
		a.Coins += coins
		res.Location = loc
		res.Coins = coins
		res.Balance = a.Coins
		res.Result = Result{Success: true, Message: fmt.Sprintf(loc.Message, coins)}
		return true
	})
	return res, err
}
