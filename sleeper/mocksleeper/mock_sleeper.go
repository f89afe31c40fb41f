package mocksleeper

import (
	"github.com/sportcoders/dynasty-mommy/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetSportState() (*model.SportState, error) {
	args := c.Called()

	var s *model.SportState
	if args.Get(0) != nil {
		s = args.Get(0).(*model.SportState)
	}

	return s, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]string, error) {
	args := c.Called(leagueID)

	var res []string
	if args.Get(0) != nil {
		res = args.Get(0).([]string)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueTransactions(leagueID string, round int) ([]model.Transaction, error) {
	args := c.Called(leagueID, round)

	var res []model.Transaction
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Transaction)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, season string) ([]string, error) {
	args := c.Called(userID, season)

	var res []string
	if args.Get(0) != nil {
		res = args.Get(0).([]string)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}
