package testutils

import "github.com/sportcoders/dynasty-mommy/model"

// Canned players matching the entries in sleeperdata/players.json.
var (
	JalenBrunson = &model.Player{
		ID:               "2133",
		FirstName:        "Jalen",
		LastName:         "Brunson",
		Team:             "NYK",
		Height:           "74",
		Weight:           "190",
		Position:         "PG",
		FantasyPositions: []string{"PG"},
		Jersey:           11,
	}
	AnthonyEdwards = &model.Player{
		ID:               "1412",
		FirstName:        "Anthony",
		LastName:         "Edwards",
		Team:             "MIN",
		Height:           "76",
		Weight:           "225",
		Position:         "SG",
		FantasyPositions: []string{"SG", "SF"},
		Jersey:           5,
	}
	NikolaJokic = &model.Player{
		ID:               "246",
		FirstName:        "Nikola",
		LastName:         "Jokic",
		Team:             "DEN",
		Height:           "83",
		Weight:           "284",
		Position:         "C",
		FantasyPositions: []string{"C"},
		Jersey:           15,
	}
	JaysonTatum = &model.Player{
		ID:               "602",
		FirstName:        "Jayson",
		LastName:         "Tatum",
		Team:             "BOS",
		Height:           "80",
		Weight:           "210",
		Position:         "PF",
		FantasyPositions: []string{"SF", "PF"},
		Jersey:           0,
	}
)

// TestPlayers is every canned player, in players.json order.
func TestPlayers() []model.Player {
	return []model.Player{*JalenBrunson, *AnthonyEdwards, *NikolaJokic, *JaysonTatum}
}
