package simulator

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampling wrappers around gonum's univariate distributions. Every
// draw takes the caller's rng so a seeded engine stays reproducible.

func sampleNormal(rng *rand.Rand, mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}.Rand()
}

func samplePoisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	return int(distuv.Poisson{Lambda: lambda, Src: rng}.Rand())
}

func sampleBinomial(rng *rand.Rand, n int, p float64) int {
	if n <= 0 {
		return 0
	}
	p = clamp(p, 0, 1)
	if p == 0 {
		return 0
	}
	if p == 1 {
		return n
	}
	return int(distuv.Binomial{N: float64(n), P: p, Src: rng}.Rand())
}

func sampleUniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// sampleMultinomial distributes total units across weights by drawing
// each unit independently proportional to weight. Non-positive weight
// sums fall back to a uniform spread.
func sampleMultinomial(rng *rand.Rand, total int, weights []float64) []int {
	counts := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return counts
	}
	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	for unit := 0; unit < total; unit++ {
		if sum <= 0 {
			counts[unit%len(weights)]++
			continue
		}
		draw := rng.Float64() * sum
		chosen := -1
		for i, w := range weights {
			if w <= 0 {
				continue
			}
			chosen = i
			draw -= w
			if draw <= 0 {
				break
			}
		}
		counts[chosen]++
	}
	return counts
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
