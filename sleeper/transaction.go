package sleeper

import (
	"encoding/json"
	"time"

	"github.com/sportcoders/dynasty-mommy/model"
)

type sleeperState struct {
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
	Week       int    `json:"week"`
}

func (s *sleeperState) toSportState() *model.SportState {
	return &model.SportState{
		Season:    s.Season,
		Week:      s.Week,
		PreSeason: s.SeasonType == "pre",
	}
}

type leagueUser struct {
	UserID string `json:"user_id"`
}

type userLeague struct {
	LeagueID string `json:"league_id"`
}

type sleeperTransaction struct {
	ID            string            `json:"transaction_id"`
	Type          string            `json:"type"`
	Status        string            `json:"status"`
	Adds          map[string]int    `json:"adds"`
	DraftPicks    []json.RawMessage `json:"draft_picks"`
	StatusUpdated int64             `json:"status_updated"`
}

func (t *sleeperTransaction) toTransaction() *model.Transaction {
	return &model.Transaction{
		ID:            t.ID,
		Type:          t.Type,
		Status:        t.Status,
		Adds:          t.Adds,
		HasDraftPicks: len(t.DraftPicks) > 0,
		// status_updated is epoch milliseconds on the wire.
		StatusUpdated: time.UnixMilli(t.StatusUpdated).UTC(),
	}
}
