package leveling

import "github.com/disgoorg/gather-bot/gatherbot/catalog"

type Config struct {
	// Threshold curve: floor(ThresholdBase * level^ThresholdExponent)
	ThresholdBase     float64
	ThresholdExponent float64

	// Pet growth
	PetXPPerFeed int64
	BoostSteps   map[catalog.BoostType]float64
	// CooldownBoostFloor is the lowest a cooldown boost can shrink to.
	CooldownBoostFloor float64
}

func NewDefaultConfig() *Config {
	return &Config{
		ThresholdBase:     100,
		ThresholdExponent: 1.5,
		PetXPPerFeed:      10,
		BoostSteps: map[catalog.BoostType]float64{
			catalog.BoostCoins:    0.05,
			catalog.BoostXP:       0.05,
			catalog.BoostRarity:   0.02,
			catalog.BoostCooldown: -0.02,
		},
		CooldownBoostFloor: 0.5,
	}
}
