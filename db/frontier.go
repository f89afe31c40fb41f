package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) Enqueue(ctx context.Context, queue, item string) error {
	const insert = `INSERT INTO frontier_queue (queue, item) VALUES (@queue, @item)`

	args := pgx.NamedArgs{
		"queue": queue,
		"item":  item,
	}
	if _, err := db.pool.Exec(ctx, insert, args); err != nil {
		return fmt.Errorf("error enqueueing %s onto %s: %w", item, queue, err)
	}
	return nil
}

// Dequeue pops the oldest item in one statement. SKIP LOCKED keeps
// concurrent crawler instances from ever popping the same row.
func (db *postgresDB) Dequeue(ctx context.Context, queue string) (string, error) {
	const pop = `DELETE FROM frontier_queue
				WHERE id = (
					SELECT id FROM frontier_queue
					WHERE queue=@queue
					ORDER BY id
					LIMIT 1
					FOR UPDATE SKIP LOCKED
				)
				RETURNING item`

	args := pgx.NamedArgs{
		"queue": queue,
	}
	var item string
	err := db.pool.QueryRow(ctx, pop, args).Scan(&item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrQueueEmpty
		}
		return "", fmt.Errorf("error popping from %s: %w", queue, err)
	}
	return item, nil
}

func (db *postgresDB) QueueLen(ctx context.Context, queue string) (int, error) {
	const query = `SELECT count(*) FROM frontier_queue WHERE queue=@queue`

	args := pgx.NamedArgs{
		"queue": queue,
	}
	var n int
	if err := db.pool.QueryRow(ctx, query, args).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", queue, err)
	}
	return n, nil
}

func (db *postgresDB) MarkVisited(ctx context.Context, namespace, item string, ttl time.Duration) error {
	const upsert = `INSERT INTO visited (namespace, item, expires)
					VALUES (@namespace, @item, @expires)
					ON CONFLICT (namespace, item) DO UPDATE SET expires=EXCLUDED.expires`

	args := pgx.NamedArgs{
		"namespace": namespace,
		"item":      item,
		"expires": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC().Add(ttl),
			Valid: true,
		},
	}
	if _, err := db.pool.Exec(ctx, upsert, args); err != nil {
		return fmt.Errorf("error marking %s visited in %s: %w", item, namespace, err)
	}
	return nil
}

// IsVisited checks the marker against the injected clock rather than the
// database's now(), so expiry is testable with a mock clock.
func (db *postgresDB) IsVisited(ctx context.Context, namespace, item string) (bool, error) {
	const query = `SELECT EXISTS(
					SELECT 1 FROM visited
					WHERE namespace=@namespace AND item=@item AND expires > @now)`

	args := pgx.NamedArgs{
		"namespace": namespace,
		"item":      item,
		"now": pgtype.Timestamptz{
			Time:  db.clock.Now().UTC(),
			Valid: true,
		},
	}
	var visited bool
	if err := db.pool.QueryRow(ctx, query, args).Scan(&visited); err != nil {
		return false, fmt.Errorf("error checking visited %s in %s: %w", item, namespace, err)
	}
	return visited, nil
}
