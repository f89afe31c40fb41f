package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sportcoders/dynasty-mommy/model"
)

const SleeperURL = "https://api.sleeper.app"

type Client interface {
	// GetSportState returns the current NBA season and week. It is read once
	// at the start of a crawl run to fix the season/round context.
	GetSportState() (*model.SportState, error)
	// GetLeagueUsers returns the IDs of every user in a league.
	GetLeagueUsers(leagueID string) ([]string, error)
	// GetLeagueTransactions returns the raw transactions for a league in the
	// given week.
	GetLeagueTransactions(leagueID string, round int) ([]model.Transaction, error)
	// GetLeaguesForUser returns the IDs of every NBA league the user is in
	// for the given season.
	GetLeaguesForUser(userID, season string) ([]string, error)
	// LoadPlayers fetches the complete NBA player list.
	LoadPlayers() ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	return newForURL(SleeperURL), nil
}

// NewForTest returns a client that talks to the given base URL instead of
// the real Sleeper API.
func NewForTest(url string) Client {
	return newForURL(url)
}

func newForURL(url string) *client {
	return &client{
		url: url,
		// The timeout bounds every call so that a single slow request cannot
		// stall the crawl loop much past its budget.
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) GetSportState() (*model.SportState, error) {
	var parsed sleeperState
	if err := c.get("/v1/state/nba", &parsed); err != nil {
		return nil, err
	}
	return parsed.toSportState(), nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]string, error) {
	var parsed []leagueUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(parsed))
	for _, u := range parsed {
		if u.UserID == "" {
			continue
		}
		result = append(result, u.UserID)
	}
	return result, nil
}

func (c *client) GetLeagueTransactions(leagueID string, round int) ([]model.Transaction, error) {
	var parsed []sleeperTransaction
	if err := c.get(fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, round), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Transaction, 0, len(parsed))
	for _, t := range parsed {
		if t.ID == "" {
			continue
		}
		result = append(result, *t.toTransaction())
	}
	return result, nil
}

func (c *client) GetLeaguesForUser(userID, season string) ([]string, error) {
	var parsed []userLeague
	if err := c.get(fmt.Sprintf("/v1/user/%s/leagues/nba/%s", userID, season), &parsed); err != nil {
		return nil, err
	}

	result := make([]string, 0, len(parsed))
	for _, l := range parsed {
		if l.LeagueID == "" {
			continue
		}
		result = append(result, l.LeagueID)
	}
	return result, nil
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nba", &parsed); err != nil {
		return nil, err
	}

	// Convert the players into model.Players
	result := make([]model.Player, 0, len(parsed))
	for id, p := range parsed {
		if p.ID == "" {
			p.ID = id
		}
		result = append(result, *p.toPlayer())
	}
	return result, nil
}

func (c *client) get(path string, v any) error {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
