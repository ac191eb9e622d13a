package rotation

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamanShrikant/basketball-manager-sub000/internal/types"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

func player(name string, pos types.Position, overall, stamina float64) types.Player {
	return types.Player{
		Name:      name,
		Position:  pos,
		Overall:   overall,
		OffRating: overall,
		DefRating: overall,
		Stamina:   stamina,
	}
}

func deepRoster() []types.Player {
	positions := []types.Position{
		types.PointGuard, types.ShootingGuard, types.SmallForward,
		types.PowerForward, types.Center,
	}
	roster := make([]types.Player, 0, 15)
	for i := 0; i < 15; i++ {
		pos := positions[i%5]
		overall := 88.0 - float64(i)*2.5
		roster = append(roster, player(fmt.Sprintf("Player%02d", i), pos, overall, 70+float64(i%3)*10))
	}
	return roster
}

func TestAllocate_MinutesSumTo240(t *testing.T) {
	minutes := Allocate(deepRoster(), testLog())
	assert.InDelta(t, 240.0, minutes.Total(), 1e-9)
	for name, mins := range minutes {
		assert.GreaterOrEqual(t, mins, 0.0, "player %s", name)
	}
}

func TestAllocate_CoversEveryRosterPlayer(t *testing.T) {
	roster := deepRoster()
	minutes := Allocate(roster, testLog())
	require.Len(t, minutes, len(roster), "every roster player gets an entry")

	selected := 0
	for _, mins := range minutes {
		if mins > 0 {
			selected++
		}
	}
	assert.Equal(t, 10, selected, "rotation should carry ten players")
}

func TestAllocate_MinimalRoster(t *testing.T) {
	roster := []types.Player{
		player("Paul", types.PointGuard, 75, 75),
		player("Booker", types.ShootingGuard, 75, 75),
		player("Tatum", types.SmallForward, 75, 75),
		player("Siakam", types.PowerForward, 75, 75),
		player("Jokic", types.Center, 75, 75),
	}
	minutes := Allocate(roster, testLog())

	total := 0.0
	for _, p := range roster {
		mins := minutes[p.Name]
		assert.Greater(t, mins, 0.0, "player %s should play", p.Name)
		total += mins
	}
	assert.InDelta(t, 240.0, total, 1e-9)

	perPosition := map[types.Position]float64{}
	for _, p := range roster {
		perPosition[p.Position] += minutes[p.Name]
	}
	for _, pos := range types.AllPositions {
		assert.Greater(t, perPosition[pos], 0.0, "position %s uncovered", pos)
	}
}

func TestAllocate_SecondaryPositionCoversSlot(t *testing.T) {
	// No natural center; the power forward moonlights there.
	roster := []types.Player{
		player("Paul", types.PointGuard, 80, 75),
		player("Booker", types.ShootingGuard, 80, 75),
		player("Tatum", types.SmallForward, 80, 75),
		player("Siakam", types.PowerForward, 80, 75),
		{Name: "Davis", Position: types.PowerForward, SecondaryPosition: types.Center,
			Overall: 85, OffRating: 85, DefRating: 85, Stamina: 80},
	}
	minutes := Allocate(roster, testLog())
	assert.Greater(t, minutes["Davis"], 0.0)
	assert.InDelta(t, 240.0, minutes.Total(), 1e-9)
}

func TestAllocate_EmptyRoster(t *testing.T) {
	assert.Empty(t, Allocate(nil, testLog()))
	assert.Empty(t, Allocate([]types.Player{}, testLog()))
	assert.Empty(t, Allocate([]types.Player{{Name: ""}}, testLog()))
}

func TestAllocate_UnselectedPlayersGetZero(t *testing.T) {
	roster := deepRoster()
	minutes := Allocate(roster, testLog())

	zeros := 0
	for _, mins := range minutes {
		if mins == 0 {
			zeros++
		}
	}
	assert.Equal(t, len(roster)-10, zeros)
}

func TestAllocate_FloorRespected(t *testing.T) {
	minutes := Allocate(deepRoster(), testLog())
	for name, mins := range minutes {
		if mins > 0 {
			assert.GreaterOrEqual(t, mins, float64(minuteFloor), "player %s below floor", name)
		}
	}
}
