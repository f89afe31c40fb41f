package model

import "time"

const (
	TransactionTypeTrade      = "trade"
	TransactionStatusComplete = "complete"
)

// Transaction is one raw transaction record for a league, as returned by
// the Sleeper transactions endpoint. Adds maps a player ID to the roster
// that received the player.
type Transaction struct {
	ID            string
	Type          string
	Status        string
	Adds          map[string]int
	HasDraftPicks bool
	StatusUpdated time.Time
}

// TradedPlayer identifies a single player moved in a trade.
type TradedPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PlayerID  string `json:"_id"`
}

// TradeLeg is the list of players one roster received in a trade.
type TradeLeg []TradedPlayer

// Trade is a persisted trade-market record. ID is the Sleeper transaction
// ID and is the dedup key; a valid trade always has at least two legs.
type Trade struct {
	ID            string
	StatusUpdated time.Time
	Legs          []TradeLeg
}
