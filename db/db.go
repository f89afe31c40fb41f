package db

import (
	"context"
	"time"

	"github.com/sportcoders/dynasty-mommy/model"
)

// Queue names and visited-marker namespaces used by the crawler. The queues
// are durable and shared, so multiple crawler instances can drain them
// concurrently.
const (
	QueueLeagues = "leagues_queue_sleeper"
	QueueUsers   = "users_queue_sleeper"

	VisitedLeague = "visited_league"
	VisitedUser   = "visited_user"
)

type DB interface {
	// GetPlayer resolves a Sleeper player ID to the stored player record.
	// Returns ErrPlayerNotFound if the ID is not in the players collection.
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// ReplacePlayers atomically swaps the entire players collection for the
	// given snapshot.
	ReplacePlayers(ctx context.Context, players []model.Player) error

	TradeExists(ctx context.Context, id string) (bool, error)
	GetTrade(ctx context.Context, id string) (*model.Trade, error)
	// InsertTrades is a best-effort batch insert. A record that already
	// exists, or fails on its own, does not abort the rest of the batch.
	// Returns the number of records actually inserted.
	InsertTrades(ctx context.Context, trades []model.Trade) (int, error)

	// Enqueue appends an item to the named queue.
	Enqueue(ctx context.Context, queue, item string) error
	// Dequeue pops the oldest item from the named queue. Returns
	// ErrQueueEmpty when there is nothing to pop. The pop is atomic, so
	// concurrent consumers never receive the same item.
	Dequeue(ctx context.Context, queue string) (string, error)
	QueueLen(ctx context.Context, queue string) (int, error)

	// MarkVisited records that an item has been seen. The marker expires
	// after ttl, at which point the item becomes eligible for re-traversal.
	MarkVisited(ctx context.Context, namespace, item string, ttl time.Duration) error
	IsVisited(ctx context.Context, namespace, item string) (bool, error)
}
