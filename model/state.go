package model

// SportState is the season and round context for one crawl run. It is read
// once at startup and treated as immutable for the rest of the run.
type SportState struct {
	Season    string
	Week      int
	PreSeason bool
}
