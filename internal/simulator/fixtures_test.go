package simulator

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func fixturePlayer(name string, pos types.Position, overall float64, attrs types.Attributes) types.Player {
	return types.Player{
		Name:       name,
		Position:   pos,
		Attributes: attrs,
		Overall:    overall,
		OffRating:  overall + 2,
		DefRating:  overall - 2,
		Stamina:    75,
	}
}

// fixtureTeam builds a ten-man roster centered on the given overall.
// The centers shoot below the three-point eligibility threshold.
func fixtureTeam(name string, overall float64) types.Team {
	guardAttrs := func(base float64) types.Attributes {
		return types.Attributes{
			ThreePoint: base + 8, MidRange: base + 4, CloseShot: base - 4,
			FreeThrow: base + 6, BallHandling: base + 8, Passing: base + 6,
			Speed: base + 8, Athleticism: base, PerimeterD: base,
			InteriorD: base - 10, Block: base - 15, Steal: base + 4,
			Rebounding: base - 12, OffenseIQ: base + 4, DefenseIQ: base,
		}
	}
	wingAttrs := func(base float64) types.Attributes {
		return types.Attributes{
			ThreePoint: base + 2, MidRange: base + 4, CloseShot: base,
			FreeThrow: base + 2, BallHandling: base, Passing: base,
			Speed: base + 2, Athleticism: base + 4, PerimeterD: base + 2,
			InteriorD: base - 4, Block: base - 6, Steal: base,
			Rebounding: base - 2, OffenseIQ: base + 2, DefenseIQ: base + 2,
		}
	}
	bigAttrs := func(base float64) types.Attributes {
		return types.Attributes{
			ThreePoint: 30, MidRange: base - 6, CloseShot: base + 10,
			FreeThrow: base - 12, BallHandling: base - 20, Passing: base - 10,
			Speed: base - 10, Athleticism: base + 2, PerimeterD: base - 8,
			InteriorD: base + 8, Block: base + 10, Steal: base - 10,
			Rebounding: base + 10, OffenseIQ: base, DefenseIQ: base + 4,
		}
	}

	b := overall
	return types.Team{
		Name: name,
		Players: []types.Player{
			fixturePlayer(name+" PG1", types.PointGuard, b+3, guardAttrs(b+3)),
			fixturePlayer(name+" SG1", types.ShootingGuard, b+1, guardAttrs(b+1)),
			fixturePlayer(name+" SF1", types.SmallForward, b+2, wingAttrs(b+2)),
			fixturePlayer(name+" PF1", types.PowerForward, b, wingAttrs(b)),
			fixturePlayer(name+" C1", types.Center, b+1, bigAttrs(b+1)),
			fixturePlayer(name+" PG2", types.PointGuard, b-6, guardAttrs(b-6)),
			fixturePlayer(name+" SG2", types.ShootingGuard, b-7, guardAttrs(b-7)),
			fixturePlayer(name+" SF2", types.SmallForward, b-8, wingAttrs(b-8)),
			fixturePlayer(name+" PF2", types.PowerForward, b-9, wingAttrs(b-9)),
			fixturePlayer(name+" C2", types.Center, b-8, bigAttrs(b-8)),
		},
	}
}

func fixtureLeague(teams ...types.Team) types.League {
	return types.League{Teams: teams}
}
