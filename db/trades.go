package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sportcoders/dynasty-mommy/model"
)

func (db *postgresDB) TradeExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM trades WHERE id=@id)`

	args := pgx.NamedArgs{
		"id": id,
	}
	var exists bool
	if err := db.pool.QueryRow(ctx, query, args).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking for trade %s: %w", id, err)
	}
	return exists, nil
}

func (db *postgresDB) GetTrade(ctx context.Context, id string) (*model.Trade, error) {
	const query = `SELECT id, status_updated, legs FROM trades WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}

	result := model.Trade{}
	var statusUpdated pgtype.Timestamptz
	var legs []byte
	err := db.pool.QueryRow(ctx, query, args).Scan(&result.ID, &statusUpdated, &legs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTradeNotFound
		}
		return nil, fmt.Errorf("error scanning trade %s: %w", id, err)
	}

	result.StatusUpdated = statusUpdated.Time
	if err := json.Unmarshal(legs, &result.Legs); err != nil {
		return nil, fmt.Errorf("error parsing legs for trade %s: %w", id, err)
	}
	return &result, nil
}

// InsertTrades writes each record with ON CONFLICT DO NOTHING so a
// duplicate raced in by another crawler instance only drops that record,
// never the rest of the batch.
func (db *postgresDB) InsertTrades(ctx context.Context, trades []model.Trade) (int, error) {
	const insert = `INSERT INTO trades (id, status_updated, legs)
					VALUES (@id, @statusUpdated, @legs)
					ON CONFLICT (id) DO NOTHING`

	inserted := 0
	for i := range trades {
		t := &trades[i]

		legs, err := json.Marshal(t.Legs)
		if err != nil {
			log.Printf("error encoding legs for trade %s: %v", t.ID, err)
			continue
		}

		args := pgx.NamedArgs{
			"id": t.ID,
			"statusUpdated": pgtype.Timestamptz{
				Time:  t.StatusUpdated,
				Valid: true,
			},
			"legs": string(legs),
		}

		tag, err := db.pool.Exec(ctx, insert, args)
		if err != nil {
			if ctx.Err() != nil {
				return inserted, ctx.Err()
			}
			log.Printf("error inserting trade %s: %v", t.ID, err)
			continue
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
