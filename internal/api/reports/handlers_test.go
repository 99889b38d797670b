package reports

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/testutil"
)

func setupReportsTest(t *testing.T) *appdb.DB {
	t.Helper()

	database := testutil.NewTestDB(t)

	prevQueries, prevClock := queries, clock
	t.Cleanup(func() {
		queries, clock = prevQueries, prevClock
	})
	queries = database.Queries
	clock = clockwork.NewFakeClockAt(time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC))
	return database
}

// seedSeason plays Lions 2-0 Tigers with both goals by Leo Mane and a yellow
// card for Tom Stripe.
func seedSeason(t *testing.T, database *appdb.DB) {
	t.Helper()

	lions := testutil.SeedTeam(t, database, "Lions")
	tigers := testutil.SeedTeam(t, database, "Tigers")
	leo := testutil.SeedPlayer(t, database, lions.ID, "Leo Mane")
	tom := testutil.SeedPlayer(t, database, tigers.ID, "Tom Stripe")
	match := testutil.SeedMatch(t, database, lions.ID, tigers.ID, "2024-04-20")

	ledger := leagues.NewLedger(database)
	for _, minute := range []int64{12, 77} {
		if _, err := ledger.RegisterGoal(context.Background(), leagues.GoalInput{MatchID: match.ID, ScorerID: leo.ID, Minute: minute}); err != nil {
			t.Fatalf("register goal: %v", err)
		}
	}
	if _, err := database.Queries.CreateCard(context.Background(), dbgen.CreateCardParams{
		MatchID:  match.ID,
		PlayerID: tom.ID,
		CardType: "yellow",
		Minute:   30,
	}); err != nil {
		t.Fatalf("create card: %v", err)
	}
}

func get(handler http.HandlerFunc, target, reportType string, htmxRequest bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if reportType != "" {
		req.SetPathValue("type", reportType)
	}
	if htmxRequest {
		req.Header.Set("HX-Request", "true")
	}
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestStandingsJSON(t *testing.T) {
	database := setupReportsTest(t)
	seedSeason(t, database)

	recorder := get(HandleStandings, "/api/v1/standings", "", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	var standings []leagues.TeamStanding
	if err := json.NewDecoder(recorder.Body).Decode(&standings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(standings) != 2 || standings[0].TeamName != "Lions" || standings[0].Points != 3 {
		t.Fatalf("standings: %+v", standings)
	}
	if standings[1].GoalDifference != -2 || standings[1].Lost != 1 {
		t.Fatalf("runner-up: %+v", standings[1])
	}
}

func TestStandingsEmptyIsArray(t *testing.T) {
	setupReportsTest(t)

	recorder := get(HandleStandings, "/api/v1/standings", "", false)
	if strings.TrimSpace(recorder.Body.String()) != "[]" {
		t.Fatalf("body: %q", recorder.Body.String())
	}
}

func TestStandingsHTMXFragment(t *testing.T) {
	database := setupReportsTest(t)
	testutil.SeedTeam(t, database, "Rock & Roll FC")

	recorder := get(HandleStandings, "/api/v1/standings", "", true)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "text/html" {
		t.Fatalf("content type: %q", ct)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, `id="standings-table"`) || !strings.Contains(body, "Rock &amp; Roll FC") {
		t.Fatalf("fragment: %s", body)
	}
}

func TestDashboardStats(t *testing.T) {
	database := setupReportsTest(t)
	seedSeason(t, database)

	recorder := get(HandleDashboardStats, "/api/v1/dashboard/stats", "", false)
	var stats dashboardStats
	if err := json.NewDecoder(recorder.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats != (dashboardStats{Players: 2, Teams: 2, Matches: 1}) {
		t.Fatalf("stats: %+v", stats)
	}
}

func TestReportRequestErrors(t *testing.T) {
	database := setupReportsTest(t)
	testutil.SeedTeam(t, database, "Lions")

	tests := []struct {
		name       string
		target     string
		reportType string
		want       int
	}{
		{name: "missing format", target: "/api/v1/reports/standings", reportType: "standings", want: http.StatusBadRequest},
		{name: "unsupported format", target: "/api/v1/reports/standings?format=pdf", reportType: "standings", want: http.StatusBadRequest},
		{name: "unknown type", target: "/api/v1/reports/referees?format=csv", reportType: "referees", want: http.StatusNotFound},
		{name: "no rows", target: "/api/v1/reports/scorers?format=csv", reportType: "scorers", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(HandleReport, tt.target, tt.reportType, false)
			if recorder.Code != tt.want {
				t.Fatalf("status: got %d want %d body: %s", recorder.Code, tt.want, recorder.Body.String())
			}
		})
	}
}

func TestStandingsCSVReport(t *testing.T) {
	database := setupReportsTest(t)
	seedSeason(t, database)

	recorder := get(HandleReport, "/api/v1/reports/standings?format=CSV", "standings", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	if got := recorder.Header().Get("Content-Disposition"); got != "attachment; filename=report_standings_2024-05-01.csv" {
		t.Fatalf("content disposition: %q", got)
	}
	if got := recorder.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("content type: %q", got)
	}

	records, err := csv.NewReader(recorder.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records: %v", records)
	}
	if records[0][0] != "Team" || records[1][0] != "Lions" || records[1][8] != "3" {
		t.Fatalf("records: %v", records)
	}
}

func TestCardsAndHistoryReports(t *testing.T) {
	database := setupReportsTest(t)
	seedSeason(t, database)

	recorder := get(HandleReport, "/api/v1/reports/cards?format=csv", "cards", false)
	records, err := csv.NewReader(recorder.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 || records[1][5] != "Lions vs Tigers" || records[1][6] != "20-04-2024" {
		t.Fatalf("cards: %v", records)
	}

	recorder = get(HandleReport, "/api/v1/reports/history?format=json", "history", false)
	var history []map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 || history[0]["Home Goals"] != "2" || history[0]["Referee"] != "Pat Whistle" || history[0]["Date"] != "20-04-2024" {
		t.Fatalf("history: %+v", history)
	}
}

func TestScorersJSONReport(t *testing.T) {
	database := setupReportsTest(t)
	seedSeason(t, database)

	recorder := get(HandleReport, "/api/v1/reports/scorers?format=json", "scorers", false)
	var scorers []map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&scorers); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scorers) != 1 || scorers[0]["Player"] != "Leo Mane" || scorers[0]["Goals"] != "2" {
		t.Fatalf("scorers: %+v", scorers)
	}
}
