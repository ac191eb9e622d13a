package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
)

func TestSampleMultinomial_ConservesTotal(t *testing.T) {
	rng := newRng(1)
	weights := []float64{5, 3, 0, 1.5, 0.5}
	for _, total := range []int{0, 1, 17, 89} {
		counts := sampleMultinomial(rng, total, weights)
		sum := 0
		for i, c := range counts {
			sum += c
			assert.GreaterOrEqual(t, c, 0)
			if weights[i] == 0 {
				assert.Zero(t, c, "zero-weight index must receive nothing")
			}
		}
		assert.Equal(t, total, sum)
	}
}

func TestSampleMultinomial_DegenerateWeights(t *testing.T) {
	rng := newRng(2)
	counts := sampleMultinomial(rng, 10, []float64{0, 0, 0})
	sum := 0
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, 10, sum, "zero weights fall back to a uniform spread")
	assert.Empty(t, sampleMultinomial(rng, 5, nil))
}

func TestSampleBinomial_Bounds(t *testing.T) {
	rng := newRng(3)
	for i := 0; i < 200; i++ {
		n := 20
		k := sampleBinomial(rng, n, 0.5)
		assert.GreaterOrEqual(t, k, 0)
		assert.LessOrEqual(t, k, n)
	}
	assert.Zero(t, sampleBinomial(rng, 0, 0.5))
	assert.Zero(t, sampleBinomial(rng, 10, 0))
	assert.Equal(t, 10, sampleBinomial(rng, 10, 1))
}

func TestSamplePoisson_NonNegative(t *testing.T) {
	rng := newRng(4)
	assert.Zero(t, samplePoisson(rng, 0))
	assert.Zero(t, samplePoisson(rng, -2))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, samplePoisson(rng, 2.5), 0)
	}
}

func TestComputeTendencies_Bounds(t *testing.T) {
	rng := newRng(5)
	league := ratings.NeutralBaseline()

	hot := league
	hot.ThreePoint = 95
	hot.Passing = 95
	hot.Block = 20

	for i := 0; i < 100; i++ {
		td := computeTendencies(rng, hot, league)
		assert.GreaterOrEqual(t, td.pace, 0.95)
		assert.LessOrEqual(t, td.pace, 1.05)
		assert.GreaterOrEqual(t, td.tpa, 0.75)
		assert.LessOrEqual(t, td.tpa, 1.35)
		assert.GreaterOrEqual(t, td.blocks, 0.70)
		assert.LessOrEqual(t, td.blocks, 1.50)
		assert.GreaterOrEqual(t, td.steals, 0.70)
		assert.LessOrEqual(t, td.steals, 1.40)
	}
}

func TestComputeTargets_Sane(t *testing.T) {
	rng := newRng(6)
	league := ratings.NeutralBaseline()
	td := computeTendencies(rng, league, league)

	targets := computeTargets(td, 112, 0)
	assert.Greater(t, targets.fga, 0)
	assert.LessOrEqual(t, targets.tpa, targets.fga)
	assert.Greater(t, targets.fta, 0)
	assert.Greater(t, targets.rebounds, 0)

	// Overtime inflates volume.
	otTargets := computeTargets(td, 112, 2)
	assert.Greater(t, otTargets.fga, targets.fga)
}
