package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportcoders/dynasty-mommy/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrTradeNotFound  error = errors.New("trade not found")
	ErrQueueEmpty     error = errors.New("queue is empty")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, name_first, name_last, team, height, weight,
						position, fantasy_positions, jersey_num, birth_date
					FROM players WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	result, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return result, nil
}

func (db *postgresDB) ReplacePlayers(ctx context.Context, players []model.Player) error {
	const insert = `INSERT INTO players (
		id,
		name_first,
		name_last,
		team,
		height,
		weight,
		position,
		fantasy_positions,
		jersey_num,
		birth_date
	) VALUES (
		@id,
		@nameFirst,
		@nameLast,
		@team,
		@height,
		@weight,
		@position,
		@fantasyPositions,
		@jerseyNum,
		@birthDate
	)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The players collection is a snapshot, drop everything and reload.
	if _, err := tx.Exec(ctx, `TRUNCATE players`); err != nil {
		return fmt.Errorf("error clearing players: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range players {
		batch.Queue(insert, namedArgsForPlayer(&players[i]))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("error inserting players: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing players snapshot: %w", err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var team, height, weight, position sql.NullString
	var birthDate pgtype.Date
	err := row.Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&team,
		&height,
		&weight,
		&position,
		&result.FantasyPositions,
		&result.Jersey,
		&birthDate)

	if err != nil {
		return nil, err
	}

	result.Team = valueOrEmpty(team)
	result.Height = valueOrEmpty(height)
	result.Weight = valueOrEmpty(weight)
	result.Position = valueOrEmpty(position)
	result.BirthDate = birthDate.Time

	return &result, nil
}

func namedArgsForPlayer(p *model.Player) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        p.ID,
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"team": sql.NullString{
			String: p.Team,
			Valid:  p.Team != "",
		},
		"height": sql.NullString{
			String: p.Height,
			Valid:  p.Height != "",
		},
		"weight": sql.NullString{
			String: p.Weight,
			Valid:  p.Weight != "",
		},
		"position": sql.NullString{
			String: p.Position,
			Valid:  p.Position != "",
		},
		"fantasyPositions": p.FantasyPositions,
		"jerseyNum":        p.Jersey,
		"birthDate": pgtype.Date{
			Time:  p.BirthDate,
			Valid: !p.BirthDate.IsZero(),
		},
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
