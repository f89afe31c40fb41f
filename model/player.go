package model

import "time"

// Player is one entry in the NBA players collection. The collection is a
// snapshot of the Sleeper player list and is replaced wholesale by the
// roster importer; the crawler only reads it to resolve names.
type Player struct {
	ID               string
	FirstName        string
	LastName         string
	Team             string
	Height           string
	Weight           string
	Position         string
	FantasyPositions []string
	Jersey           int
	BirthDate        time.Time
}

func (p *Player) FormattedBirthDate() string {
	if p.BirthDate.IsZero() {
		return "unknown"
	}
	return p.BirthDate.Format(time.DateOnly)
}
