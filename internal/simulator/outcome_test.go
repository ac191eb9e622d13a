package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

func TestGenerateOutcome_ScoreClampAndQuarterSums(t *testing.T) {
	rng := newRng(11)
	home := types.TeamRatings{Overall: 82, Offense: 84, Defense: 80}
	away := types.TeamRatings{Overall: 78, Offense: 77, Defense: 79}

	for trial := 0; trial < 500; trial++ {
		h, a, overtimes := generateOutcome(rng, home, away)

		require.GreaterOrEqual(t, len(h.periods), 4)
		require.Equal(t, len(h.periods), len(a.periods))
		assert.Equal(t, 4+overtimes, len(h.periods))

		sum := 0
		for _, q := range h.periods {
			sum += q
		}
		assert.Equal(t, h.total, sum, "home quarters must sum to total")
		sum = 0
		for _, q := range a.periods {
			sum += q
		}
		assert.Equal(t, a.total, sum, "away quarters must sum to total")

		// Regulation totals honor the clamp; overtime only adds.
		regH, regA := h.total, a.total
		for i := 4; i < len(h.periods); i++ {
			regH -= h.periods[i]
			regA -= a.periods[i]
		}
		assert.GreaterOrEqual(t, regH, scoreFloor)
		assert.LessOrEqual(t, regH, scoreCeiling)
		assert.GreaterOrEqual(t, regA, scoreFloor)
		assert.LessOrEqual(t, regA, scoreCeiling)

		assert.NotEqual(t, h.total, a.total, "a game never ends tied")
	}
}

func TestGenerateOutcome_OvertimeAppendsUntilSettled(t *testing.T) {
	rng := newRng(3)
	even := types.TeamRatings{Overall: 78, Offense: 78, Defense: 78}

	sawOvertime := false
	for trial := 0; trial < 3000 && !sawOvertime; trial++ {
		h, a, overtimes := generateOutcome(rng, even, even)
		if overtimes == 0 {
			continue
		}
		sawOvertime = true
		assert.Len(t, h.periods, 4+overtimes)
		for i := 4; i < len(h.periods); i++ {
			assert.GreaterOrEqual(t, h.periods[i], overtimeMinScore)
			assert.GreaterOrEqual(t, a.periods[i], overtimeMinScore)
		}
		assert.NotEqual(t, h.total, a.total)
	}
	assert.True(t, sawOvertime, "evenly matched teams should eventually tie in regulation")
}

func TestGenerateOutcome_BetterTeamScoresMoreOnAverage(t *testing.T) {
	rng := newRng(21)
	strong := types.TeamRatings{Overall: 92, Offense: 93, Defense: 91}
	weak := types.TeamRatings{Overall: 72, Offense: 71, Defense: 73}

	strongTotal, weakTotal := 0, 0
	for trial := 0; trial < 200; trial++ {
		h, a, _ := generateOutcome(rng, strong, weak)
		strongTotal += h.total
		weakTotal += a.total
	}
	assert.Greater(t, strongTotal, weakTotal)
}

func TestSplitQuarters_ExactDecomposition(t *testing.T) {
	rng := newRng(5)
	for _, total := range []int{85, 101, 113, 145} {
		quarters := splitQuarters(rng, total)
		require.Len(t, quarters, 4)
		sum := 0
		for _, q := range quarters {
			assert.GreaterOrEqual(t, q, 0)
			sum += q
		}
		assert.Equal(t, total, sum)
	}
}
