package testutils

import (
	"embed"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed scoreboarddata
var scoreboarddata embed.FS

// FakeScoreboardServer serves a fixed scoreboard: declared week 10, three
// week-10 games, and one straggling week-9 Monday game whose kickoff anchors
// the grace-window tests.
type FakeScoreboardServer struct {
	s *httptest.Server
}

func NewFakeScoreboardServer() *FakeScoreboardServer {
	r := chi.NewRouter()
	r.Get("/scoreboard", func(w http.ResponseWriter, _ *http.Request) {
		b, err := scoreboarddata.ReadFile("scoreboarddata/scoreboard.json")
		if err != nil {
			log.Printf("error reading scoreboard fixture: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	})

	return &FakeScoreboardServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeScoreboardServer) Close() {
	f.s.Close()
}

func (f *FakeScoreboardServer) URL() string {
	return f.s.URL
}
