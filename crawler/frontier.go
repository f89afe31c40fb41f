package crawler

import (
	"context"
	"errors"
	"time"

	"github.com/sportcoders/dynasty-mommy/db"
)

// frontier is one kind of not-yet-processed identifier (leagues or users):
// a durable FIFO queue plus a namespace of expiring visited markers. The
// same TTL policy applies to both kinds, so it lives here instead of being
// duplicated per kind.
type frontier struct {
	db        db.DB
	queue     string
	namespace string
	ttl       time.Duration
}

// pop removes and returns the oldest item. ok is false when the queue is
// empty.
func (f *frontier) pop(ctx context.Context) (string, bool, error) {
	item, err := f.db.Dequeue(ctx, f.queue)
	if err != nil {
		if errors.Is(err, db.ErrQueueEmpty) {
			return "", false, nil
		}
		return "", false, err
	}
	return item, true, nil
}

// add enqueues the item unless it is still inside its visited-TTL window.
// Once the marker expires the item becomes discoverable again, which is
// intentional: league membership and transaction history change over time.
func (f *frontier) add(ctx context.Context, item string) error {
	visited, err := f.db.IsVisited(ctx, f.namespace, item)
	if err != nil {
		return err
	}
	if visited {
		return nil
	}
	return f.db.Enqueue(ctx, f.queue, item)
}

// visit marks the item processed for the TTL window. Items are marked
// before their fetches run, so a failed fetch does not cause the item to
// be retried until the marker expires.
func (f *frontier) visit(ctx context.Context, item string) error {
	return f.db.MarkVisited(ctx, f.namespace, item, f.ttl)
}
