package particle

import (
	"math"
	"math/rand"
)

const tau = 2 * math.Pi

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// randAngle returns an angle in [0, 2π).
func randAngle(rng *rand.Rand) float64 {
	a := rng.Float64() * tau
	if a >= tau {
		return 0
	}
	return a
}

func unit(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
