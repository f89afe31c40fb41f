package crawler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sportcoders/dynasty-mommy/db"
	"github.com/sportcoders/dynasty-mommy/db/mockdb"
	"github.com/sportcoders/dynasty-mommy/model"
	"github.com/sportcoders/dynasty-mommy/sleeper/mocksleeper"
	"github.com/sportcoders/dynasty-mommy/testutils"
	"github.com/stretchr/testify/mock"
)

func TestRun_zeroBudget(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockSleeper := &mocksleeper.Client{}

	c, err := New(clock.NewMock(), mockDB, mockSleeper)
	if err != nil {
		t.Fatalf("error creating crawler: %v", err)
	}

	if err := c.Run(context.Background(), 0); err != nil {
		t.Errorf("expected a zero budget run to complete cleanly, got: %v", err)
	}

	// Nothing should have been fetched or touched.
	mockSleeper.AssertNotCalled(t, "GetSportState")
	mockDB.AssertNotCalled(t, "Dequeue", mock.Anything, mock.Anything)
}

func TestRun_canceledContext(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockSleeper := &mocksleeper.Client{}

	c, err := New(clock.New(), mockDB, mockSleeper)
	if err != nil {
		t.Fatalf("error creating crawler: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx, time.Minute); err != nil {
		t.Errorf("expected a canceled run to complete cleanly, got: %v", err)
	}
	mockSleeper.AssertNotCalled(t, "GetSportState")
}

// Walks a full crawl: one seeded league with the three canonical
// transactions (draft-pick trade, waiver-budget pseudo-trade, valid
// two-party trade), one discovered user, one league discovered from that
// user with nothing in it. Exactly one trade record should be persisted.
func TestRun_scenario(t *testing.T) {
	state := &model.SportState{Season: "2025", Week: 2}

	valid := validTransaction("tx-valid")
	picks := validTransaction("tx-picks")
	picks.HasDraftPicks = true
	waiver := validTransaction("tx-waiver")
	waiver.Adds = map[string]int{"602": 3}

	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetSportState").Return(state, nil)
	mockSleeper.On("GetLeagueTransactions", "L1", 2).
		Return([]model.Transaction{picks, waiver, valid}, nil)
	mockSleeper.On("GetLeagueUsers", "L1").Return([]string{"U1"}, nil)
	mockSleeper.On("GetLeaguesForUser", "U1", "2025").Return([]string{"L1", "L2"}, nil)
	mockSleeper.On("GetLeagueTransactions", "L2", 2).Return([]model.Transaction{}, nil)
	mockSleeper.On("GetLeagueUsers", "L2").Return([]string{}, nil)

	mockDB := &mockdb.DB{}

	// League phase 1: L1, then empty.
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("L1", nil).Once()
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("", db.ErrQueueEmpty).Once()
	mockDB.On("MarkVisited", mock.Anything, db.VisitedLeague, "L1", mock.Anything).Return(nil)

	mockDB.On("TradeExists", mock.Anything, "tx-valid").Return(false, nil)
	mockDB.On("TradeExists", mock.Anything, "tx-picks").Return(false, nil)
	mockDB.On("TradeExists", mock.Anything, "tx-waiver").Return(false, nil)
	mockDB.On("GetPlayer", mock.Anything, "2133").Return(testutils.JalenBrunson, nil)
	mockDB.On("GetPlayer", mock.Anything, "1412").Return(testutils.AnthonyEdwards, nil)

	var inserted []model.Trade
	mockDB.On("InsertTrades", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, args.Get(1).([]model.Trade)...)
		}).
		Return(1, nil)

	// U1 is new, gets queued.
	mockDB.On("IsVisited", mock.Anything, db.VisitedUser, "U1").Return(false, nil)
	mockDB.On("Enqueue", mock.Anything, db.QueueUsers, "U1").Return(nil)

	// User phase: U1, then empty for the rest of the run.
	mockDB.On("Dequeue", mock.Anything, db.QueueUsers).Return("U1", nil).Once()
	mockDB.On("Dequeue", mock.Anything, db.QueueUsers).Return("", db.ErrQueueEmpty)
	mockDB.On("MarkVisited", mock.Anything, db.VisitedUser, "U1", mock.Anything).Return(nil)

	// L1 was just visited, only L2 is re-queued.
	mockDB.On("IsVisited", mock.Anything, db.VisitedLeague, "L1").Return(true, nil)
	mockDB.On("IsVisited", mock.Anything, db.VisitedLeague, "L2").Return(false, nil)
	mockDB.On("Enqueue", mock.Anything, db.QueueLeagues, "L2").Return(nil)

	// League phase 2: L2, then empty for the rest of the run.
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("L2", nil).Once()
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("", db.ErrQueueEmpty)
	mockDB.On("MarkVisited", mock.Anything, db.VisitedLeague, "L2", mock.Anything).Return(nil)

	c, err := New(clock.New(), mockDB, mockSleeper)
	if err != nil {
		t.Fatalf("error creating crawler: %v", err)
	}

	if err := c.Run(context.Background(), time.Minute); err != nil {
		t.Fatalf("error running crawl: %v", err)
	}

	if len(inserted) != 1 {
		t.Fatalf("expected exactly 1 persisted trade, got %d", len(inserted))
	}
	trade := inserted[0]
	if trade.ID != "tx-valid" {
		t.Errorf("expected trade tx-valid, got %s", trade.ID)
	}
	if len(trade.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(trade.Legs))
	}
	for i, leg := range trade.Legs {
		if len(leg) != 1 {
			t.Errorf("expected leg %d to have 1 player, got %d", i, len(leg))
		}
	}

	mockSleeper.AssertExpectations(t)
	mockDB.AssertExpectations(t)
}

func TestRun_fetchErrorAbandonsLeague(t *testing.T) {
	state := &model.SportState{Season: "2025", Week: 2}

	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetSportState").Return(state, nil)
	mockSleeper.On("GetLeagueTransactions", "L1", 2).
		Return(nil, errors.New("connection reset"))

	mockDB := &mockdb.DB{}
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("L1", nil).Once()
	mockDB.On("Dequeue", mock.Anything, db.QueueLeagues).Return("", db.ErrQueueEmpty)
	mockDB.On("Dequeue", mock.Anything, db.QueueUsers).Return("", db.ErrQueueEmpty)
	mockDB.On("MarkVisited", mock.Anything, db.VisitedLeague, "L1", mock.Anything).Return(nil)

	c, err := New(clock.New(), mockDB, mockSleeper)
	if err != nil {
		t.Fatalf("error creating crawler: %v", err)
	}

	if err := c.Run(context.Background(), time.Minute); err != nil {
		t.Fatalf("a failed fetch should not fail the run, got: %v", err)
	}

	// The league is abandoned for this pass but stays visited; no users
	// are fetched and nothing is inserted.
	mockDB.AssertExpectations(t)
	mockSleeper.AssertNotCalled(t, "GetLeagueUsers", mock.Anything)
	mockDB.AssertNotCalled(t, "InsertTrades", mock.Anything, mock.Anything)
}

func TestRun_sportStateErrorIsFatal(t *testing.T) {
	mockSleeper := &mocksleeper.Client{}
	mockSleeper.On("GetSportState").Return(nil, errors.New("503 from sleeper"))

	c, err := New(clock.New(), &mockdb.DB{}, mockSleeper)
	if err != nil {
		t.Fatalf("error creating crawler: %v", err)
	}

	if err := c.Run(context.Background(), time.Minute); err == nil {
		t.Errorf("expected an error when the sport state cannot be read")
	}
}

func TestSeedLeague(t *testing.T) {
	tests := map[string]struct {
		visited     bool
		wantEnqueue bool
	}{
		"new league is queued":       {visited: false, wantEnqueue: true},
		"visited league is left out": {visited: true, wantEnqueue: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			mockDB.On("IsVisited", mock.Anything, db.VisitedLeague, "L1").Return(tc.visited, nil)
			if tc.wantEnqueue {
				mockDB.On("Enqueue", mock.Anything, db.QueueLeagues, "L1").Return(nil)
			}

			c, err := New(clock.New(), mockDB, &mocksleeper.Client{})
			if err != nil {
				t.Fatalf("error creating crawler: %v", err)
			}

			if err := c.SeedLeague(context.Background(), "L1"); err != nil {
				t.Fatalf("error seeding league: %v", err)
			}
			mockDB.AssertExpectations(t)
			if !tc.wantEnqueue {
				mockDB.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
