package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func SeedTeam(t *testing.T, database *db.DB, name string) dbgen.Team {
	t.Helper()

	team, err := database.Queries.CreateTeam(context.Background(), dbgen.CreateTeamParams{
		Name: name,
		City: name + " City",
	})
	if err != nil {
		t.Fatalf("insert team %s: %v", name, err)
	}
	return team
}

func SeedPlayer(t *testing.T, database *db.DB, teamID int64, fullName string) dbgen.Player {
	t.Helper()

	player, err := database.Queries.CreatePlayer(context.Background(), dbgen.CreatePlayerParams{
		FullName:  fullName,
		BirthDate: "1995-04-12",
		Position:  "Forward",
		TeamID:    teamID,
	})
	if err != nil {
		t.Fatalf("insert player %s: %v", fullName, err)
	}
	return player
}

func SeedReferee(t *testing.T, database *db.DB) dbgen.Referee {
	t.Helper()

	referee, err := database.Queries.CreateReferee(context.Background(), dbgen.CreateRefereeParams{
		FullName: "Pat Whistle",
		Role:     "Main",
	})
	if err != nil {
		t.Fatalf("insert referee: %v", err)
	}
	return referee
}

func SeedVenue(t *testing.T, database *db.DB) dbgen.Venue {
	t.Helper()

	venue, err := database.Queries.CreateVenue(context.Background(), dbgen.CreateVenueParams{
		Name:     "North Ground",
		Location: "Harbour Road",
	})
	if err != nil {
		t.Fatalf("insert venue: %v", err)
	}
	return venue
}

// SeedMatch creates a 0-0 match between home and away with a fresh referee
// and venue.
func SeedMatch(t *testing.T, database *db.DB, homeID, awayID int64, date string) dbgen.Match {
	t.Helper()

	referee := SeedReferee(t, database)
	venue := SeedVenue(t, database)
	match, err := database.Queries.CreateMatch(context.Background(), dbgen.CreateMatchParams{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		RefereeID:  referee.ID,
		VenueID:    venue.ID,
		MatchDate:  date,
		MatchTime:  "15:00",
	})
	if err != nil {
		t.Fatalf("insert match: %v", err)
	}
	return match
}

// SetScore overwrites a match score directly, bypassing the goal ledger.
func SetScore(t *testing.T, database *db.DB, matchID int64, home, away int) {
	t.Helper()

	_, err := database.ExecContext(context.Background(),
		"UPDATE matches SET home_score = ?, away_score = ? WHERE id = ?",
		home,
		away,
		matchID,
	)
	if err != nil {
		t.Fatalf("set score for match %d: %v", matchID, err)
	}
}
