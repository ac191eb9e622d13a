package ratings

import (
	"gonum.org/v1/gonum/stat"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

// Neutral baseline used when the league has no rostered players.
const (
	neutralAttributeMean = 70.0
	neutralOverallMean   = 75.0
)

// Baseline holds league-wide mean values for the tracked attributes,
// averaged over every rostered player (not minute-weighted). Team
// tendencies are expressed as relative deviations from these means.
type Baseline struct {
	ThreePoint float64
	Passing    float64
	Rebounding float64
	Steal      float64
	Block      float64
	OffenseIQ  float64
	DefenseIQ  float64
	Overall    float64
}

// NeutralBaseline returns the divide-by-zero-safe default.
func NeutralBaseline() Baseline {
	return Baseline{
		ThreePoint: neutralAttributeMean,
		Passing:    neutralAttributeMean,
		Rebounding: neutralAttributeMean,
		Steal:      neutralAttributeMean,
		Block:      neutralAttributeMean,
		OffenseIQ:  neutralAttributeMean,
		DefenseIQ:  neutralAttributeMean,
		Overall:    neutralOverallMean,
	}
}

// ComputeBaseline derives the league baseline from every rostered
// player. Stateless; callers may cache per game if they like.
func ComputeBaseline(league types.League) Baseline {
	var threes, passing, rebounding, steals, blocks, offIQ, defIQ, overall []float64
	for _, team := range league.Teams {
		for _, p := range team.Players {
			threes = append(threes, p.Attributes.ThreePoint)
			passing = append(passing, p.Attributes.Passing)
			rebounding = append(rebounding, p.Attributes.Rebounding)
			steals = append(steals, p.Attributes.Steal)
			blocks = append(blocks, p.Attributes.Block)
			offIQ = append(offIQ, p.Attributes.OffenseIQ)
			defIQ = append(defIQ, p.Attributes.DefenseIQ)
			overall = append(overall, p.Overall)
		}
	}
	if len(overall) == 0 {
		return NeutralBaseline()
	}
	return Baseline{
		ThreePoint: stat.Mean(threes, nil),
		Passing:    stat.Mean(passing, nil),
		Rebounding: stat.Mean(rebounding, nil),
		Steal:      stat.Mean(steals, nil),
		Block:      stat.Mean(blocks, nil),
		OffenseIQ:  stat.Mean(offIQ, nil),
		DefenseIQ:  stat.Mean(defIQ, nil),
		Overall:    stat.Mean(overall, nil),
	}
}
