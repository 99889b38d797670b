package leagues

import (
	"testing"
	"time"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

func teamsWithIDs(ids ...int64) []dbgen.Team {
	teams := make([]dbgen.Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, dbgen.Team{ID: id})
	}
	return teams
}

func TestPlanRoundRobinPairsEveryTeamOnce(t *testing.T) {
	start := time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC)
	for _, count := range []int{2, 3, 4, 5, 6} {
		ids := make([]int64, 0, count)
		for i := 1; i <= count; i++ {
			ids = append(ids, int64(i))
		}

		fixtures, err := PlanRoundRobin(teamsWithIDs(ids...), start, 7, "15:00")
		if err != nil {
			t.Fatalf("plan %d teams: %v", count, err)
		}
		if want := count * (count - 1) / 2; len(fixtures) != want {
			t.Fatalf("%d teams: got %d fixtures, want %d", count, len(fixtures), want)
		}

		seen := make(map[[2]int64]bool)
		perRound := make(map[int]map[int64]bool)
		for _, fixture := range fixtures {
			a, b := fixture.HomeTeamID, fixture.AwayTeamID
			if a == b {
				t.Fatalf("team %d plays itself", a)
			}
			if a > b {
				a, b = b, a
			}
			key := [2]int64{a, b}
			if seen[key] {
				t.Fatalf("pair %v scheduled twice", key)
			}
			seen[key] = true

			if perRound[fixture.Round] == nil {
				perRound[fixture.Round] = make(map[int64]bool)
			}
			round := perRound[fixture.Round]
			if round[fixture.HomeTeamID] || round[fixture.AwayTeamID] {
				t.Fatalf("team plays twice in round %d", fixture.Round)
			}
			round[fixture.HomeTeamID] = true
			round[fixture.AwayTeamID] = true
		}
	}
}

func TestPlanRoundRobinSpacesRounds(t *testing.T) {
	start := time.Date(2024, 8, 3, 18, 30, 0, 0, time.UTC)

	fixtures, err := PlanRoundRobin(teamsWithIDs(1, 2, 3, 4), start, 7, "7:30 PM")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, fixture := range fixtures {
		want := start.AddDate(0, 0, (fixture.Round-1)*7).Format(DateLayout)
		if fixture.Date != want {
			t.Fatalf("round %d date: got %s want %s", fixture.Round, fixture.Date, want)
		}
		if fixture.Time != "19:30" {
			t.Fatalf("kickoff: %s", fixture.Time)
		}
	}
}

func TestPlanRoundRobinRejectsBadInput(t *testing.T) {
	start := time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC)

	if _, err := PlanRoundRobin(teamsWithIDs(1), start, 7, "15:00"); err == nil {
		t.Fatalf("expected error for a single team")
	}
	if _, err := PlanRoundRobin(teamsWithIDs(1, 2), start, 0, "15:00"); err == nil {
		t.Fatalf("expected error for zero spacing")
	}
	if _, err := PlanRoundRobin(teamsWithIDs(1, 2), start, 7, "lunch"); err == nil {
		t.Fatalf("expected error for bad kickoff")
	}
	if _, err := PlanRoundRobin(teamsWithIDs(1, 1), start, 7, "15:00"); err == nil {
		t.Fatalf("expected error for duplicate team")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Fatalf("expected invalid calendar date to fail")
	}
	parsed, err := ParseDate(" 2024-02-29 ")
	if err != nil {
		t.Fatalf("parse leap day: %v", err)
	}
	if parsed.Month() != time.February || parsed.Day() != 29 {
		t.Fatalf("parsed: %v", parsed)
	}
}
