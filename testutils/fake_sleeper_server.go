package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// IDs served by the fake server. Anything else gets an empty response,
// which is how the real API answers for unknown IDs.
const (
	TestLeagueID = "1109454292748550144"
	TestUserID   = "863894502948319232"
	TestSeason   = "2025"
	TestWeek     = "2"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nba", stateHandler)
		r.Get("/players/nba", nbaPlayersHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/users", leagueUsersHandler)
			r.Get("/transactions/{round}", leagueTransactionsHandler)
		})

		r.Get("/user/{userID}/leagues/nba/{season}", userLeaguesHandler)
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func stateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func nbaPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	if leagueID == TestLeagueID {
		serveFile(w, "league_users.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leagueTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	round := chi.URLParam(r, "round")

	if leagueID == TestLeagueID && round == TestWeek {
		serveFile(w, "league_transactions.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	season := chi.URLParam(r, "season")

	if userID == TestUserID && season == TestSeason {
		serveFile(w, "user_leagues.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
