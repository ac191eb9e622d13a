package types

import "math"

// Position represents one of the five primary lineup slots.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// AllPositions lists the five slots in lineup order.
var AllPositions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Attributes is the fixed 15-slot attribute vector supplied by the
// league editor. Values are conventionally in the 25-99 range.
type Attributes struct {
	ThreePoint   float64 `json:"three_point"`
	MidRange     float64 `json:"mid_range"`
	CloseShot    float64 `json:"close_shot"`
	FreeThrow    float64 `json:"free_throw"`
	BallHandling float64 `json:"ball_handling"`
	Passing      float64 `json:"passing"`
	Speed        float64 `json:"speed"`
	Athleticism  float64 `json:"athleticism"`
	PerimeterD   float64 `json:"perimeter_defense"`
	InteriorD    float64 `json:"interior_defense"`
	Block        float64 `json:"block"`
	Steal        float64 `json:"steal"`
	Rebounding   float64 `json:"rebounding"`
	OffenseIQ    float64 `json:"offense_iq"`
	DefenseIQ    float64 `json:"defense_iq"`
}

// Player carries the editor-derived ratings the engine treats as
// read-only input. Name is unique within a team.
type Player struct {
	Name              string     `json:"name"`
	Position          Position   `json:"position"`
	SecondaryPosition Position   `json:"secondary_position,omitempty"`
	Attributes        Attributes `json:"attributes"`
	Overall           float64    `json:"overall"`
	OffRating         float64    `json:"off_rating"`
	DefRating         float64    `json:"def_rating"`
	Stamina           float64    `json:"stamina"`
}

// PlaysPosition reports whether the player covers pos with either slot.
func (p Player) PlaysPosition(pos Position) bool {
	return p.Position == pos || p.SecondaryPosition == pos
}

// Eligible reports whether the player can be put on the floor at all.
func (p Player) Eligible() bool {
	return p.Name != "" && !math.IsNaN(p.Overall) && !math.IsInf(p.Overall, 0)
}

// MinutesMap maps player name to allocated minutes. The active sum is
// 240 plus 25 per overtime period actually played.
type MinutesMap map[string]float64

// Clone returns an independent copy. The engine only ever mutates
// clones, never a caller-supplied map.
func (m MinutesMap) Clone() MinutesMap {
	out := make(MinutesMap, len(m))
	for name, mins := range m {
		out[name] = mins
	}
	return out
}

// Total sums minutes across all entries.
func (m MinutesMap) Total() float64 {
	total := 0.0
	for _, mins := range m {
		total += mins
	}
	return total
}

// Team is an ordered roster plus an optional externally-edited minutes
// plan. A nil or empty plan triggers the rotation fallback.
type Team struct {
	Name    string     `json:"name"`
	Players []Player   `json:"players"`
	Minutes MinutesMap `json:"minutes,omitempty"`
}

// League is the full set of rosters, used only for baseline means.
type League struct {
	Teams []Team `json:"teams"`
}

// TeamRatings are the three aggregate strength scalars.
type TeamRatings struct {
	Overall float64 `json:"overall"`
	Offense float64 `json:"offense"`
	Defense float64 `json:"defense"`
}

// BoxScoreRow is one player's final stat line. Zero-minute roster
// players appear as all-zero rows.
type BoxScoreRow struct {
	Name     string `json:"name"`
	Minutes  int    `json:"minutes"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
	FGM      int    `json:"fgm"`
	FGA      int    `json:"fga"`
	TPM      int    `json:"tpm"`
	TPA      int    `json:"tpa"`
	FTM      int    `json:"ftm"`
	FTA      int    `json:"fta"`
	Turnovers int   `json:"turnovers"`
	Fouls    int    `json:"fouls"`
}

// TeamResult is one side of a finished game.
type TeamResult struct {
	Name     string        `json:"name"`
	Quarters []int         `json:"quarters"`
	Total    int           `json:"total"`
	Ratings  TeamRatings   `json:"ratings"`
	Minutes  MinutesMap    `json:"minutes"`
	BoxScore []BoxScoreRow `json:"box_score"`
}

// Winner describes the winning side of a game.
type Winner struct {
	Side     string `json:"side"`
	Name     string `json:"name"`
	Score    string `json:"score"`
	Overtime bool   `json:"overtime"`
}

// GameResult is the complete output of one simulated game. Consumers
// persist it (or a slimmed form) as they see fit.
type GameResult struct {
	ID              string     `json:"id"`
	Home            TeamResult `json:"home"`
	Away            TeamResult `json:"away"`
	Winner          Winner     `json:"winner"`
	OvertimePeriods int        `json:"overtime_periods"`
}
