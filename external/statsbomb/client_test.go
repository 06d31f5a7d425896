package statsbomb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-ai/internal/domain/match"
	"github.com/riskibarqy/football-ai/internal/domain/matchstats"
	"github.com/riskibarqy/football-ai/internal/platform/resilience"
	"github.com/riskibarqy/football-ai/internal/usecase"
)

const eventsFixture = `[
  {"id":"b","index":3,"period":1,"minute":22,"second":10,"type":{"id":16,"name":"Shot"},
   "team":{"id":779,"name":"Argentina"},"player":{"id":5503,"name":"Lionel Andrés Messi Cuccittini"},
   "shot":{"outcome":{"id":97,"name":"Goal"},"type":{"id":88,"name":"Penalty"}}},
  {"id":"a","index":2,"period":1,"minute":0,"second":1,"type":{"id":30,"name":"Pass"},
   "team":{"id":771,"name":"France"},"player":{"id":3009,"name":"Olivier Giroud"},
   "pass":{"type":{"id":61,"name":"Corner"},"outcome":{"id":9,"name":"Incomplete"}}},
  {"id":"c","index":4,"period":2,"minute":55,"second":0,"type":{"id":24,"name":"Bad Behaviour"},
   "team":{"id":771,"name":"France"},"player":null,"bad_behaviour":{"card":{"id":7,"name":"Yellow Card"}}},
  {"id":"d","index":1,"period":1,"minute":0,"second":0,"type":{"id":35,"name":"Starting XI"},
   "team":{"id":779,"name":"Argentina"}}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc, retries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		MaxRetries: retries,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})
	client.retryBackoff = time.Millisecond
	return client
}

func TestListEvents_MapsNestedFieldsAndSorts(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/3869685.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(eventsFixture))
	}, 0)

	events, err := client.ListEvents(context.Background(), 3869685)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	ids := []string{events[0].ID, events[1].ID, events[2].ID, events[3].ID}
	if ids[0] != "d" || ids[1] != "a" || ids[2] != "b" || ids[3] != "c" {
		t.Fatalf("unexpected order %v", ids)
	}

	pass := events[1]
	if pass.PassType != match.PassTypeCorner || pass.PassOutcome != "Incomplete" || pass.MatchID != 3869685 {
		t.Fatalf("unexpected pass mapping %+v", pass)
	}
	shot := events[2]
	if shot.ShotOutcome != match.OutcomeGoal || shot.ShotType != "Penalty" || shot.Player == "" {
		t.Fatalf("unexpected shot mapping %+v", shot)
	}
	card := events[3]
	if card.BadBehaviorCard != match.CardYellow || card.Player != "" {
		t.Fatalf("unexpected card mapping %+v", card)
	}
}

const stoppageTimeFixture = `[
  {"id":"second-half","index":20,"period":2,"minute":45,"second":20,"type":{"id":16,"name":"Shot"},
   "team":{"id":1,"name":"Home"},"player":{"id":2,"name":"Second Half Scorer"},
   "shot":{"outcome":{"id":97,"name":"Goal"}}},
  {"id":"stoppage","index":10,"period":1,"minute":46,"second":30,"type":{"id":16,"name":"Shot"},
   "team":{"id":1,"name":"Home"},"player":{"id":1,"name":"Stoppage Scorer"},
   "shot":{"outcome":{"id":97,"name":"Goal"}}}
]`

func TestListEvents_OrdersStoppageTimeBeforeNextPeriod(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(stoppageTimeFixture))
	}, 0)

	events, err := client.ListEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 || events[0].ID != "stoppage" || events[1].ID != "second-half" {
		t.Fatalf("expected period 1 stoppage time first, got %+v", events)
	}

	summary := matchstats.ReconstructScore(events, "Home", "Away")
	if want := "Stoppage Scorer (46'), Second Half Scorer (45')"; summary.HomeTeamPlayerGoals != want {
		t.Fatalf("expected scorers %q, got %q", want, summary.HomeTeamPlayerGoals)
	}
}

func TestListMatches_MapsTeamsAndScores(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"match_id":3869685,"match_date":"2022-12-18","kick_off":"16:00:00.000",
		  "competition":{"competition_id":43,"country_name":"International","competition_name":"FIFA World Cup"},
		  "season":{"season_id":106,"season_name":"2022"},
		  "home_team":{"home_team_id":779,"home_team_name":"Argentina"},
		  "away_team":{"away_team_id":771,"away_team_name":"France"},
		  "home_score":3,"away_score":3,"match_status":"available","match_week":7,
		  "competition_stage":{"id":26,"name":"Final"},"stadium":{"id":1,"name":"Lusail Stadium"},"referee":null}]`))
	}, 0)

	matches, err := client.ListMatches(context.Background(), 43, 106)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
	m := matches[0]
	if m.HomeTeam != "Argentina" || m.AwayTeam != "France" || m.HomeScore != 3 || m.AwayScore != 3 {
		t.Fatalf("unexpected match mapping %+v", m)
	}
	if m.Competition != "International - FIFA World Cup" || m.CompetitionStage != "Final" || m.Stadium != "Lusail Stadium" || m.Referee != "" {
		t.Fatalf("unexpected match metadata %+v", m)
	}
}

func TestListLineups_MapsPositions(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"team_id":779,"team_name":"Argentina","lineup":[
		  {"player_id":6909,"player_name":"Damián Emiliano Martínez","player_nickname":"Emiliano Martínez","jersey_number":23,
		   "country":{"id":11,"name":"Argentina"},"cards":[],
		   "positions":[{"position_id":1,"position":"Goalkeeper","from":"00:00","to":null,"start_reason":"Starting XI","end_reason":"Final Whistle"}]}]}]`))
	}, 0)

	lineups, err := client.ListLineups(context.Background(), 3869685)
	if err != nil {
		t.Fatalf("list lineups: %v", err)
	}
	if len(lineups) != 1 || len(lineups[0].Players) != 1 {
		t.Fatalf("unexpected lineups %+v", lineups)
	}
	p := lineups[0].Players[0]
	if p.JerseyNumber != 23 || p.Country != "Argentina" || p.Positions[0].StartReason != match.StartReasonStarting {
		t.Fatalf("unexpected player mapping %+v", p)
	}
}

func TestGetJSON_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.NotFound, 2)

	_, err := client.ListEvents(context.Background(), 1)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetJSON_RetriesThenOpensCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, 1)

	for i := 0; i < 2; i++ {
		_, err := client.ListCompetitions(context.Background())
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}
	if got := calls.Load(); got != 4 {
		t.Fatalf("expected 2 requests per call with one retry, got %d", got)
	}

	_, err := client.ListCompetitions(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected open circuit to reject, got %v", err)
	}
	if got := calls.Load(); got != 4 {
		t.Fatalf("open circuit should not reach provider, calls=%d", got)
	}
}

func TestListEvents_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})
	if _, err := client.ListEvents(context.Background(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type recordingObserver struct {
	resources []string
	failures  int
}

func (o *recordingObserver) ProviderRequest(resource string, err error) {
	o.resources = append(o.resources, resource)
	if err != nil {
		o.failures++
	}
}

func TestGetJSON_ReportsToObserver(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, 0)
	obs := &recordingObserver{}
	client.observer = obs

	if _, err := client.ListCompetitions(context.Background()); err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if len(obs.resources) != 1 || obs.resources[0] != "competitions" || obs.failures != 0 {
		t.Fatalf("unexpected observations %+v", obs)
	}
}
