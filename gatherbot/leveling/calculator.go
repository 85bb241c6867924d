package leveling

import "math"

type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	return &Calculator{config: config}
}

// Threshold is the xp needed to leave the given level.
func (c *Calculator) Threshold(level int) int64 {
	return int64(math.Floor(c.config.ThresholdBase * math.Pow(float64(level), c.config.ThresholdExponent)))
}
