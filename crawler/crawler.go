package crawler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sportcoders/dynasty-mommy/db"
	"github.com/sportcoders/dynasty-mommy/model"
	"github.com/sportcoders/dynasty-mommy/sleeper"
)

const (
	// How long a league or user stays suppressed after a visit before it
	// becomes eligible for re-traversal.
	visitedTTL = 7 * 24 * time.Hour

	// In pre-season mode, transactions older than this window are discarded.
	preSeasonWindow = 2 * 7 * 24 * time.Hour

	// Local throttle on outbound requests, applied after each work unit.
	leagueDelay = 2 * time.Millisecond
	userDelay   = 150 * time.Microsecond
)

// Crawler walks the Sleeper social graph, league by league and user by
// user, extracting completed player-for-player trades into the trade
// market. Multiple instances can run concurrently against the same
// database; the queue and insert primitives are atomic at the store level.
type Crawler struct {
	clock   clock.Clock
	db      db.DB
	sleeper sleeper.Client
	leagues frontier
	users   frontier
}

func New(clock clock.Clock, database db.DB, sleeper sleeper.Client) (*Crawler, error) {
	c := &Crawler{
		clock:   clock,
		db:      database,
		sleeper: sleeper,
		leagues: frontier{db: database, queue: db.QueueLeagues, namespace: db.VisitedLeague, ttl: visitedTTL},
		users:   frontier{db: database, queue: db.QueueUsers, namespace: db.VisitedUser, ttl: visitedTTL},
	}
	return c, nil
}

// SeedLeague puts a starting league on the frontier so a crawl has
// somewhere to begin. Recently visited leagues are left alone.
func (c *Crawler) SeedLeague(ctx context.Context, leagueID string) error {
	return c.leagues.add(ctx, leagueID)
}

// crawlRun holds the context fixed at the start of one run.
type crawlRun struct {
	state    *model.SportState
	cutoff   time.Time
	deadline time.Time
}

// Run drains the league and user frontiers until both are empty or the
// time budget expires. Both are normal completions. The deadline is
// checked between work units, never mid-call, so a slow call can overrun
// the budget by at most one request.
func (c *Crawler) Run(ctx context.Context, budget time.Duration) error {
	deadline := c.clock.Now().Add(budget)
	if !c.timeLeft(ctx, deadline) {
		return nil
	}

	state, err := c.sleeper.GetSportState()
	if err != nil {
		return fmt.Errorf("error reading sport state: %w", err)
	}

	run := &crawlRun{
		state:    state,
		cutoff:   c.clock.Now().Add(-preSeasonWindow),
		deadline: deadline,
	}

	log.Printf("crawl starting: season %s week %d, budget %v", state.Season, state.Week, budget)

	for c.timeLeft(ctx, deadline) {
		processed := c.drainLeagues(ctx, run) + c.drainUsers(ctx, run)
		if processed == 0 {
			// both frontiers exhausted
			break
		}
	}

	log.Printf("crawl finished")
	return nil
}

func (c *Crawler) drainLeagues(ctx context.Context, run *crawlRun) int {
	count := 0
	for c.timeLeft(ctx, run.deadline) {
		leagueID, ok, err := c.leagues.pop(ctx)
		if err != nil {
			log.Printf("error popping league queue: %v", err)
			break
		}
		if !ok {
			break
		}
		count++
		c.processLeague(ctx, run, leagueID)
		c.clock.Sleep(leagueDelay)
	}
	return count
}

func (c *Crawler) processLeague(ctx context.Context, run *crawlRun, leagueID string) {
	if err := c.leagues.visit(ctx, leagueID); err != nil {
		log.Printf("error marking league %s visited: %v", leagueID, err)
	}

	// A failed fetch abandons the league for this pass. It stays visited,
	// so the TTL window provides the retry instead of the queue.
	txs, err := c.sleeper.GetLeagueTransactions(leagueID, run.state.Week)
	if err != nil {
		log.Printf("error fetching transactions for league %s: %v", leagueID, err)
		return
	}

	trades := c.collectTrades(ctx, run, txs)
	if len(trades) > 0 {
		n, err := c.db.InsertTrades(ctx, trades)
		if err != nil {
			log.Printf("error inserting trades for league %s: %v", leagueID, err)
		} else if n > 0 {
			log.Printf("league %s: added %d trades", leagueID, n)
		}
	}

	members, err := c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		log.Printf("error fetching users for league %s: %v", leagueID, err)
		return
	}
	for _, userID := range members {
		if err := c.users.add(ctx, userID); err != nil {
			log.Printf("error queueing user %s: %v", userID, err)
		}
	}
}

func (c *Crawler) drainUsers(ctx context.Context, run *crawlRun) int {
	count := 0
	for c.timeLeft(ctx, run.deadline) {
		userID, ok, err := c.users.pop(ctx)
		if err != nil {
			log.Printf("error popping user queue: %v", err)
			break
		}
		if !ok {
			break
		}
		count++
		c.processUser(ctx, run, userID)
		c.clock.Sleep(userDelay)
	}
	return count
}

func (c *Crawler) processUser(ctx context.Context, run *crawlRun, userID string) {
	if err := c.users.visit(ctx, userID); err != nil {
		log.Printf("error marking user %s visited: %v", userID, err)
	}

	leagueIDs, err := c.sleeper.GetLeaguesForUser(userID, run.state.Season)
	if err != nil {
		log.Printf("error fetching leagues for user %s: %v", userID, err)
		return
	}
	for _, leagueID := range leagueIDs {
		if err := c.leagues.add(ctx, leagueID); err != nil {
			log.Printf("error queueing league %s: %v", leagueID, err)
		}
	}
}

func (c *Crawler) timeLeft(ctx context.Context, deadline time.Time) bool {
	return ctx.Err() == nil && c.clock.Now().Before(deadline)
}
