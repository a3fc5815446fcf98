package testutils

import (
	"github.com/EyalPasha/Redzone-Companion-My-Players/model"
)

// Players matching the embedded sleeperdata fixtures.
var (
	TylerLockett = model.Player{
		ID:        "2374",
		FirstName: "Tyler",
		LastName:  "Lockett",
		Position:  model.POS_WR,
		Team:      model.TEAM_SEA,
		Jersey:    16,
	}
	JalenHurts = model.Player{
		ID:        "6904",
		FirstName: "Jalen",
		LastName:  "Hurts",
		Position:  model.POS_QB,
		Team:      model.TEAM_PHI,
		Jersey:    1,
	}
	CeeDeeLamb = model.Player{
		ID:        "6786",
		FirstName: "CeeDee",
		LastName:  "Lamb",
		Position:  model.POS_WR,
		Team:      model.TEAM_DAL,
		Jersey:    88,
	}
	TJHockenson = model.Player{
		ID:        "5844",
		FirstName: "T.J.",
		LastName:  "Hockenson",
		Position:  model.POS_TE,
		Team:      model.TEAM_MIN,
		Jersey:    87,
	}
	BreeceHall = model.Player{
		ID:        "8155",
		FirstName: "Breece",
		LastName:  "Hall",
		Position:  model.POS_RB,
		Team:      model.TEAM_NYJ,
		Jersey:    20,
	}
)

// PlayerFixtures returns a table holding every fixture player, matching what
// the fake platform's bulk endpoint serves after position filtering.
func PlayerFixtures() model.PlayerTable {
	table := make(model.PlayerTable)
	for _, p := range []model.Player{TylerLockett, JalenHurts, CeeDeeLamb, TJHockenson, BreeceHall} {
		table[p.ID] = p
	}
	return table
}
