package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// SleeperLeagueID is the only league the fake server knows about.
const SleeperLeagueID = "924039165950484480"

// SleeperFailingWeek always returns a 500 from the matchups endpoint.
const SleeperFailingWeek = 3

//go:embed sleeperdata
var sleeperdata embed.FS

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/state/nfl", nflStateHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Use(knownLeague)
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

func knownLeague(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "leagueID") != SleeperLeagueID {
			// unknown leagues come back as a 200 with "null" from the real api
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("null"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "users.json")
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "rosters.json")
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")
	switch week {
	case "1", "2":
		serveFile(w, fmt.Sprintf("matchups_%s.json", week))
	case fmt.Sprint(SleeperFailingWeek):
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	default:
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
