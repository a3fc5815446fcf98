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

// Fixture league ids served by the fake platform. Alpha has a full matchup
// for week 10; bravo has an empty matchup list, which is how the platform
// represents a bye.
const (
	LeagueAlphaID = "924039165950484480"
	LeagueBravoID = "1005178517580746753"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", nflStateHandler)
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})
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

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveSleeperFile(w, "state.json")
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveSleeperFile(w, "players.json")
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	if userID == "12345678" && year == "2024" {
		serveSleeperFile(w, "user_leagues.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "sleeperuser" {
		serveSleeperFile(w, "sleeperuser.json")
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the response body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := leagueFixtureName(chi.URLParam(r, "leagueID"))
	if !ok {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
		return
	}
	serveSleeperFile(w, fmt.Sprintf("league_%s.json", name))
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := leagueFixtureName(chi.URLParam(r, "leagueID"))
	if !ok {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveSleeperFile(w, fmt.Sprintf("users_%s.json", name))
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := leagueFixtureName(chi.URLParam(r, "leagueID"))
	if !ok {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveSleeperFile(w, fmt.Sprintf("rosters_%s.json", name))
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := leagueFixtureName(chi.URLParam(r, "leagueID"))
	week := chi.URLParam(r, "week")
	if !ok || week != "10" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveSleeperFile(w, fmt.Sprintf("matchups_%s_%s.json", name, week))
}

func leagueFixtureName(leagueID string) (string, bool) {
	switch leagueID {
	case LeagueAlphaID:
		return "alpha", true
	case LeagueBravoID:
		return "bravo", true
	default:
		return "", false
	}
}

func serveSleeperFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
