package models

import (
	"database/sql"
	"errors"
	"testing"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
)

func TestMatchLabel(t *testing.T) {
	got := MatchLabel("Lions", "Tigers", "2024-03-09")
	if got != "Lions vs Tigers - 09/03/2024" {
		t.Fatalf("label: %q", got)
	}
	if got := MatchLabel("Lions", "Tigers", "soon"); got != "Lions vs Tigers - soon" {
		t.Fatalf("label with bad date: %q", got)
	}
}

func TestMatchInputNormalize(t *testing.T) {
	in := MatchInput{HomeTeamID: 1, AwayTeamID: 2, RefereeID: 3, VenueID: 4, Date: "2024-06-01", Time: "7:05 pm"}
	got, err := in.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.Time != "19:05" || got.Date != "2024-06-01" {
		t.Fatalf("normalized: %+v", got)
	}

	in.AwayTeamID = in.HomeTeamID
	if _, err := in.Normalize(); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error for same teams, got %v", err)
	}
}

func TestCardInputNormalize(t *testing.T) {
	got, err := CardInput{MatchID: 1, PlayerID: 2, CardType: " Yellow ", Minute: 40}.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.CardType != CardYellow {
		t.Fatalf("card type: %q", got.CardType)
	}

	if _, err := (CardInput{MatchID: 1, PlayerID: 2, CardType: "green", Minute: 40}).Normalize(); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error for green card, got %v", err)
	}
	if _, err := (CardInput{MatchID: 1, PlayerID: 2, CardType: "red"}).Normalize(); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error for missing minute, got %v", err)
	}
}

func TestPlayerInputNormalizeRejectsBadBirthDate(t *testing.T) {
	in := PlayerInput{FullName: "Ana", BirthDate: "12/04/1995", Position: "Keeper", TeamID: 1}
	if _, err := in.Normalize(); !errors.Is(err, leagues.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTeamInputNormalizeTrims(t *testing.T) {
	got, err := TeamInput{Name: "  Lions ", City: " Porto"}.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.Name != "Lions" || got.City != "Porto" {
		t.Fatalf("normalized: %+v", got)
	}
}

func TestGoalFromDBMapsAssist(t *testing.T) {
	goal := GoalFromDB(dbgen.Goal{ID: 1, MatchID: 2, PlayerID: 3, Minute: 4, Side: "home"})
	if goal.AssistID != nil {
		t.Fatalf("expected nil assist, got %v", *goal.AssistID)
	}

	goal = GoalFromDB(dbgen.Goal{ID: 1, AssistPlayerID: sql.NullInt64{Int64: 9, Valid: true}})
	if goal.AssistID == nil || *goal.AssistID != 9 {
		t.Fatalf("assist: %v", goal.AssistID)
	}
}
