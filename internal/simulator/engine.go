// Package simulator is the statistical core of the franchise sim: it
// turns two rosters, their minutes plans and the league context into a
// final score, quarter breakdown and fully reconciled box scores.
package simulator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/ratings"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/rotation"
	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

// Options configures an Engine. A zero Seed keeps the default
// unseeded behavior; a nonzero Seed makes runs reproducible.
type Options struct {
	Seed   uint64
	Logger *logrus.Logger
}

// Engine simulates games. One call computes one game end to end; the
// engine holds no state between calls beyond its random source, so
// callers running batches should give each concurrent engine its own
// instance.
type Engine struct {
	rng      *rand.Rand
	log      *logrus.Logger
	strategy ratings.Strategy
	playoff  ratings.Strategy
}

// New builds an engine from opts.
func New(opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
		strategy: ratings.GameStrategy{},
		playoff:  ratings.PlayoffStrategy{},
	}
}

// SimulateGame runs one game between home and away. Teams carrying an
// externally-edited minutes plan keep it; otherwise the rotation
// fallback allocates one, and the allocation used is returned in the
// result so callers may persist it. Caller-supplied teams and minutes
// maps are never mutated.
func (e *Engine) SimulateGame(home, away *types.Team, league types.League) (*types.GameResult, error) {
	if home == nil || away == nil {
		return nil, fmt.Errorf("simulate game: both teams are required")
	}
	if home.Name == away.Name {
		return nil, fmt.Errorf("simulate game: %q cannot play itself", home.Name)
	}
	if len(home.Players) == 0 && len(away.Players) == 0 {
		return nil, fmt.Errorf("simulate game: neither team has any players")
	}

	gameID := uuid.New().String()
	log := e.log.WithFields(logrus.Fields{
		"game_id": gameID,
		"home":    home.Name,
		"away":    away.Name,
	})

	baseline := ratings.ComputeBaseline(league)

	homeMinutes := e.minutesFor(home, log)
	awayMinutes := e.minutesFor(away, log)

	homeRatings := e.strategy.Rate(home.Players, homeMinutes)
	awayRatings := e.strategy.Rate(away.Players, awayMinutes)

	homeOut, awayOut, overtimes := generateOutcome(e.rng, homeRatings, awayRatings)

	homeBox, homeMinutes := synthesize(e.rng, log, *home, homeMinutes, homeOut.total, baseline, overtimes)
	awayBox, awayMinutes := synthesize(e.rng, log, *away, awayMinutes, awayOut.total, baseline, overtimes)

	winner := types.Winner{
		Side:     "home",
		Name:     home.Name,
		Score:    fmt.Sprintf("%d-%d", homeOut.total, awayOut.total),
		Overtime: overtimes > 0,
	}
	if awayOut.total > homeOut.total {
		winner.Side = "away"
		winner.Name = away.Name
		winner.Score = fmt.Sprintf("%d-%d", awayOut.total, homeOut.total)
	}

	log.WithFields(logrus.Fields{
		"score":     fmt.Sprintf("%d-%d", homeOut.total, awayOut.total),
		"overtimes": overtimes,
		"winner":    winner.Name,
	}).Info("Game simulated")

	return &types.GameResult{
		ID: gameID,
		Home: types.TeamResult{
			Name:     home.Name,
			Quarters: homeOut.periods,
			Total:    homeOut.total,
			Ratings:  homeRatings,
			Minutes:  homeMinutes,
			BoxScore: homeBox,
		},
		Away: types.TeamResult{
			Name:     away.Name,
			Quarters: awayOut.periods,
			Total:    awayOut.total,
			Ratings:  awayRatings,
			Minutes:  awayMinutes,
			BoxScore: awayBox,
		},
		Winner:          winner,
		OvertimePeriods: overtimes,
	}, nil
}

// minutesFor returns a private copy of the team's minutes plan, or the
// rotation fallback when no plan is attached.
func (e *Engine) minutesFor(team *types.Team, log *logrus.Entry) types.MinutesMap {
	if len(team.Minutes) > 0 {
		return team.Minutes.Clone()
	}
	return rotation.Allocate(team.Players, log.WithField("team", team.Name))
}

// RatePlayoffTeam applies the playoff-quality rating strategy, the
// variant used for series and finals comparisons. Not interchangeable
// with the game-day ratings inside SimulateGame.
func (e *Engine) RatePlayoffTeam(team *types.Team) types.TeamRatings {
	if team == nil {
		return types.TeamRatings{}
	}
	minutes := e.minutesFor(team, e.log.WithField("team", team.Name))
	return e.playoff.Rate(team.Players, minutes)
}

// SeriesResult summarizes a best-of-n playoff series.
type SeriesResult struct {
	Winner   string             `json:"winner"`
	HomeWins int                `json:"home_wins"`
	AwayWins int                `json:"away_wins"`
	Games    []types.GameResult `json:"games"`
}

// SimulateSeries plays home and away in a best-of-n series with a
// 2-2-1-1-1 home-court pattern. The bracket logic deciding who meets
// whom lives upstream; this is just a sequential driver over
// SimulateGame.
func (e *Engine) SimulateSeries(home, away *types.Team, league types.League, bestOf int) (*SeriesResult, error) {
	if bestOf <= 0 || bestOf%2 == 0 {
		return nil, fmt.Errorf("simulate series: best-of must be a positive odd number, got %d", bestOf)
	}
	needed := bestOf/2 + 1
	homeCourt := []bool{true, true, false, false, true, false, true}

	result := &SeriesResult{}
	for game := 0; result.HomeWins < needed && result.AwayWins < needed; game++ {
		h, a := home, away
		if game < len(homeCourt) && !homeCourt[game] {
			h, a = away, home
		}
		gr, err := e.SimulateGame(h, a, league)
		if err != nil {
			return nil, err
		}
		if gr.Winner.Name == home.Name {
			result.HomeWins++
		} else {
			result.AwayWins++
		}
		result.Games = append(result.Games, *gr)
	}
	result.Winner = home.Name
	if result.AwayWins > result.HomeWins {
		result.Winner = away.Name
	}
	return result, nil
}
