package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// RefreshPlayers replaces the NBA players collection with a fresh snapshot
// from Sleeper. The swap is atomic, readers never observe a partial list.
func (c *Crawler) RefreshPlayers(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("player refresh starting at %v", start.Format(time.DateTime))

	players, err := c.sleeper.LoadPlayers()
	if err != nil {
		return err
	}
	if len(players) == 0 {
		return errors.New("refusing to replace players with an empty snapshot")
	}

	if err := c.db.ReplacePlayers(ctx, players); err != nil {
		return fmt.Errorf("error saving players snapshot: %w", err)
	}

	log.Printf("player refresh finished, %d players in %v", len(players), c.clock.Now().Sub(start))
	return nil
}
