package sleeper

import (
	"log"
	"time"

	"github.com/sportcoders/dynasty-mommy/model"
)

var zeroTime = time.Time{}

type sleeperPlayer struct {
	ID               string   `json:"player_id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Team             string   `json:"team"`
	Height           string   `json:"height"`
	Weight           string   `json:"weight"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	JerseyNumber     int      `json:"number"`
	BirthDate        string   `json:"birth_date"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:               p.ID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Team:             p.Team,
		Height:           p.Height,
		Weight:           p.Weight,
		Position:         p.Position,
		FantasyPositions: p.FantasyPositions,
		Jersey:           p.JerseyNumber,
		BirthDate:        parseBirthdate(p.BirthDate, p.ID),
	}
}

func parseBirthdate(b, playerID string) time.Time {
	if b == "" {
		return zeroTime
	}

	d, err := time.Parse(time.DateOnly, b)
	if err != nil {
		log.Printf("error parsing birthdate for %s: %v", playerID, err)
		return zeroTime
	}
	return d
}
