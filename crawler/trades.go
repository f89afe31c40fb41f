package crawler

import (
	"context"
	"log"
	"slices"

	"github.com/sportcoders/dynasty-mommy/model"
)

// collectTrades filters the raw transactions for one league down to the
// qualifying trades and reshapes them into persistable records. Records
// already in the trade market are skipped, as are non-trades, incomplete
// trades, trades involving draft picks, and (in pre-season) trades older
// than the cutoff. A failure on one transaction never drops the rest.
func (c *Crawler) collectTrades(ctx context.Context, run *crawlRun, txs []model.Transaction) []model.Trade {
	trades := make([]model.Trade, 0, len(txs))
	for i := range txs {
		t := &txs[i]

		exists, err := c.db.TradeExists(ctx, t.ID)
		if err != nil {
			log.Printf("error checking trade market for %s: %v", t.ID, err)
			continue
		}
		if exists {
			continue
		}

		if t.Type != model.TransactionTypeTrade || t.Status != model.TransactionStatusComplete ||
			len(t.Adds) == 0 || t.HasDraftPicks {
			continue
		}

		if run.state.PreSeason && t.StatusUpdated.Before(run.cutoff) {
			// stale pre-season activity
			continue
		}

		legs, err := c.buildLegs(ctx, t)
		if err != nil {
			log.Printf("error resolving players for transaction %s: %v", t.ID, err)
			continue
		}
		if len(legs) < 2 {
			// players moved for waiver budget only, not a real trade
			continue
		}

		trades = append(trades, model.Trade{
			ID:            t.ID,
			StatusUpdated: t.StatusUpdated,
			Legs:          legs,
		})
	}
	return trades
}

// buildLegs groups the added players by the roster that received them, one
// leg per roster. Adds is iterated in sorted player-ID order so that the
// first-encountered roster order, and with it the persisted leg order, is
// stable run to run.
func (c *Crawler) buildLegs(ctx context.Context, t *model.Transaction) ([]model.TradeLeg, error) {
	playerIDs := make([]string, 0, len(t.Adds))
	for id := range t.Adds {
		playerIDs = append(playerIDs, id)
	}
	slices.Sort(playerIDs)

	order := make([]int, 0, 2)
	byRoster := make(map[int]model.TradeLeg)
	for _, playerID := range playerIDs {
		p, err := c.db.GetPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}

		roster := t.Adds[playerID]
		if _, seen := byRoster[roster]; !seen {
			order = append(order, roster)
		}
		byRoster[roster] = append(byRoster[roster], model.TradedPlayer{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			PlayerID:  p.ID,
		})
	}

	legs := make([]model.TradeLeg, 0, len(order))
	for _, roster := range order {
		legs = append(legs, byRoster[roster])
	}
	return legs, nil
}
