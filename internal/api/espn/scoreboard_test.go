package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/omarshaarawi/roastbot/internal/config"
	"github.com/omarshaarawi/roastbot/internal/models"
)

const scoreboardResponse = `{
	"teams": [
		{"id": 1, "abbrev": "PUK", "location": "Puk", "nickname": "Nukem", "logo": "https://example.com/puk.png"},
		{"id": 2, "abbrev": "NBP", "name": "No-Bell Prizes", "logo": "https://example.com/nbp.png"},
		{"id": 3, "abbrev": "JR", "location": "Jolly", "nickname": "Roger"}
	],
	"schedule": [
		{"id": 10, "matchupPeriodId": 5, "playoffTierType": "NONE",
		 "home": {"teamId": 1, "totalPoints": 101.254},
		 "away": {"teamId": 2, "totalPoints": 80, "totalPointsLive": 99.5}},
		{"id": 11, "matchupPeriodId": 5, "playoffTierType": "WINNERS_BRACKET",
		 "home": {"teamId": 3, "totalPoints": 77.7}},
		{"id": 12, "matchupPeriodId": 4,
		 "home": {"teamId": 1, "totalPoints": 1},
		 "away": {"teamId": 3, "totalPoints": 2}}
	]
}`

type recordedRequest struct {
	path   string
	views  []string
	filter string
	cookie string
}

func newFakeESPN(t *testing.T, body string, seen *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.path = r.URL.Path
		seen.views = r.URL.Query()["view"]
		seen.filter = r.Header.Get("x-fantasy-filter")
		seen.cookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func newTestAPI(baseURL string, cookies bool) *API {
	cfg := config.ESPNAPI{Year: "2024", LeagueID: "123456", BaseURL: baseURL}
	if cookies {
		cfg.SWID = "{SWID}"
		cfg.ESPNS2 = "s2"
	}
	return NewAPI(NewClient(cfg))
}

func TestGetScoreboard(t *testing.T) {
	var seen recordedRequest
	server := newFakeESPN(t, scoreboardResponse, &seen)
	defer server.Close()

	matchups, err := newTestAPI(server.URL, true).GetScoreboard(context.Background(), 5)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := []models.ESPNMatchup{
		{
			HomeTeam: "Puk Nukem", AwayTeam: "No-Bell Prizes",
			HomeScore: 101.25, AwayScore: 99.5,
			HomeLogo: "https://example.com/puk.png", AwayLogo: "https://example.com/nbp.png",
		},
		{
			HomeTeam: "Jolly Roger", AwayTeam: "N/A",
			HomeScore: 77.7, AwayScore: 0,
			IsPlayoff: true,
		},
	}
	if !reflect.DeepEqual(matchups, expected) {
		t.Errorf("unexpected matchups:\nexpected: %+v\ngot:      %+v", expected, matchups)
	}

	if seen.path != "/seasons/2024/segments/0/leagues/123456" {
		t.Errorf("unexpected path %q", seen.path)
	}
	if !reflect.DeepEqual(seen.views, []string{"mTeam", "mScoreboard"}) {
		t.Errorf("expected repeated view params, got %v", seen.views)
	}
	if seen.cookie != "SWID={SWID}; espn_s2=s2" {
		t.Errorf("unexpected cookie %q", seen.cookie)
	}

	var filter struct {
		Schedule struct {
			FilterMatchupPeriodIds struct {
				Value []int `json:"value"`
			} `json:"filterMatchupPeriodIds"`
		} `json:"schedule"`
	}
	if err := json.Unmarshal([]byte(seen.filter), &filter); err != nil {
		t.Fatalf("filter header is not json: %v", err)
	}
	if !reflect.DeepEqual(filter.Schedule.FilterMatchupPeriodIds.Value, []int{5}) {
		t.Errorf("unexpected filter %s", seen.filter)
	}
}

func TestGetScoreboard_noCookiesForPublicLeagues(t *testing.T) {
	var seen recordedRequest
	server := newFakeESPN(t, `{"teams": [], "schedule": []}`, &seen)
	defer server.Close()

	matchups, err := newTestAPI(server.URL, false).GetScoreboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(matchups) != 0 {
		t.Errorf("expected no matchups, got %v", matchups)
	}
	if seen.cookie != "" {
		t.Errorf("expected no cookie, got %q", seen.cookie)
	}
}

func TestGetScoreboard_httpError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"messages":["You are not authorized to view this League."]}`))
	}))
	defer server.Close()

	_, err := newTestAPI(server.URL, true).GetScoreboard(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected an error for a 401")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "not authorized") {
		t.Errorf("expected the status and body in the error, got %v", err)
	}
}

func TestGetLeagueState(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected models.LeagueState
	}{
		{
			name:     "active",
			body:     `{"seasonId": 2024, "status": {"currentMatchupPeriod": 7, "isActive": true}}`,
			expected: models.LeagueState{Season: "2024", SeasonType: "regular", Week: 7},
		},
		{
			name:     "inactive",
			body:     `{"seasonId": 2023, "status": {"currentMatchupPeriod": 17, "isActive": false}}`,
			expected: models.LeagueState{Season: "2023", SeasonType: "off", Week: 17},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen recordedRequest
			server := newFakeESPN(t, tc.body, &seen)
			defer server.Close()

			state, err := newTestAPI(server.URL, false).GetLeagueState(context.Background())
			if err != nil {
				t.Fatalf("error should have been nil, was: %v", err)
			}
			if *state != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, *state)
			}
			if !reflect.DeepEqual(seen.views, []string{"mSettings"}) {
				t.Errorf("unexpected views %v", seen.views)
			}
		})
	}
}
