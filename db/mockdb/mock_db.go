package mockdb

import (
	"context"
	"time"

	"github.com/sportcoders/dynasty-mommy/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) ReplacePlayers(ctx context.Context, players []model.Player) error {
	args := db.Called(ctx, players)
	return args.Error(0)
}

func (db *DB) TradeExists(ctx context.Context, id string) (bool, error) {
	args := db.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (db *DB) GetTrade(ctx context.Context, id string) (*model.Trade, error) {
	args := db.Called(ctx, id)

	var t *model.Trade
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Trade)
	}

	return t, args.Error(1)
}

func (db *DB) InsertTrades(ctx context.Context, trades []model.Trade) (int, error) {
	args := db.Called(ctx, trades)
	return args.Int(0), args.Error(1)
}

func (db *DB) Enqueue(ctx context.Context, queue, item string) error {
	args := db.Called(ctx, queue, item)
	return args.Error(0)
}

func (db *DB) Dequeue(ctx context.Context, queue string) (string, error) {
	args := db.Called(ctx, queue)
	return args.String(0), args.Error(1)
}

func (db *DB) QueueLen(ctx context.Context, queue string) (int, error) {
	args := db.Called(ctx, queue)
	return args.Int(0), args.Error(1)
}

func (db *DB) MarkVisited(ctx context.Context, namespace, item string, ttl time.Duration) error {
	args := db.Called(ctx, namespace, item, ttl)
	return args.Error(0)
}

func (db *DB) IsVisited(ctx context.Context, namespace, item string) (bool, error) {
	args := db.Called(ctx, namespace, item)
	return args.Bool(0), args.Error(1)
}
