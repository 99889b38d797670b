// internal/models/league.go
package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
)

const maxNameLength = 100

const (
	CardYellow = "yellow"
	CardRed    = "red"
)

type TeamInput struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type PlayerInput struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Position  string `json:"position"`
	TeamID    int64  `json:"team_id"`
}

type RefereeInput struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type VenueInput struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type MatchInput struct {
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	RefereeID  int64  `json:"referee_id"`
	VenueID    int64  `json:"venue_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type CardInput struct {
	MatchID  int64  `json:"match_id"`
	PlayerID int64  `json:"player_id"`
	CardType string `json:"card_type"`
	Minute   int64  `json:"minute"`
}

func requiredText(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", leagues.Validation(field + " is required")
	}
	if len(value) > maxNameLength {
		return "", leagues.Validation(fmt.Sprintf("%s must be %d characters or fewer", field, maxNameLength))
	}
	return value, nil
}

func requiredID(value int64, field string) error {
	if value <= 0 {
		return leagues.Validation(field + " is required")
	}
	return nil
}

func (in TeamInput) Normalize() (TeamInput, error) {
	var err error
	if in.Name, err = requiredText(in.Name, "name"); err != nil {
		return TeamInput{}, err
	}
	if in.City, err = requiredText(in.City, "city"); err != nil {
		return TeamInput{}, err
	}
	return in, nil
}

func (in PlayerInput) Normalize() (PlayerInput, error) {
	var err error
	if in.FullName, err = requiredText(in.FullName, "full_name"); err != nil {
		return PlayerInput{}, err
	}
	if in.Position, err = requiredText(in.Position, "position"); err != nil {
		return PlayerInput{}, err
	}
	birthDate, err := leagues.ParseDate(in.BirthDate)
	if err != nil {
		return PlayerInput{}, leagues.Validation("birth_date must be in YYYY-MM-DD format")
	}
	in.BirthDate = birthDate.Format(leagues.DateLayout)
	if err := requiredID(in.TeamID, "team_id"); err != nil {
		return PlayerInput{}, err
	}
	return in, nil
}

func (in RefereeInput) Normalize() (RefereeInput, error) {
	var err error
	if in.FullName, err = requiredText(in.FullName, "full_name"); err != nil {
		return RefereeInput{}, err
	}
	if in.Role, err = requiredText(in.Role, "role"); err != nil {
		return RefereeInput{}, err
	}
	return in, nil
}

func (in VenueInput) Normalize() (VenueInput, error) {
	var err error
	if in.Name, err = requiredText(in.Name, "name"); err != nil {
		return VenueInput{}, err
	}
	if in.Location, err = requiredText(in.Location, "location"); err != nil {
		return VenueInput{}, err
	}
	return in, nil
}

// Normalize checks references and rewrites date and time to their stored
// layouts.
func (in MatchInput) Normalize() (MatchInput, error) {
	for _, check := range []struct {
		value int64
		field string
	}{
		{in.HomeTeamID, "home_team_id"},
		{in.AwayTeamID, "away_team_id"},
		{in.RefereeID, "referee_id"},
		{in.VenueID, "venue_id"},
	} {
		if err := requiredID(check.value, check.field); err != nil {
			return MatchInput{}, err
		}
	}
	if in.HomeTeamID == in.AwayTeamID {
		return MatchInput{}, leagues.Validation("home and away teams must differ")
	}

	date, err := leagues.ParseDate(in.Date)
	if err != nil {
		return MatchInput{}, leagues.Validation(err.Error())
	}
	kickoff, err := leagues.ParseTimeOfDay(in.Time)
	if err != nil {
		return MatchInput{}, leagues.Validation(err.Error())
	}
	in.Date = date.Format(leagues.DateLayout)
	in.Time = kickoff.Format(leagues.TimeLayout)
	return in, nil
}

func (in CardInput) Normalize() (CardInput, error) {
	if err := requiredID(in.MatchID, "match_id"); err != nil {
		return CardInput{}, err
	}
	if err := requiredID(in.PlayerID, "player_id"); err != nil {
		return CardInput{}, err
	}
	in.CardType = strings.ToLower(strings.TrimSpace(in.CardType))
	if in.CardType != CardYellow && in.CardType != CardRed {
		return CardInput{}, leagues.Validation("card_type must be yellow or red")
	}
	if in.Minute <= 0 {
		return CardInput{}, leagues.Validation("minute must be a positive integer")
	}
	return in, nil
}

type Goal struct {
	ID       int64  `json:"id"`
	MatchID  int64  `json:"match_id"`
	ScorerID int64  `json:"scorer_id"`
	Minute   int64  `json:"minute"`
	AssistID *int64 `json:"assist_id"`
	Side     string `json:"side"`
}

func GoalFromDB(goal dbgen.Goal) Goal {
	return Goal{
		ID:       goal.ID,
		MatchID:  goal.MatchID,
		ScorerID: goal.PlayerID,
		Minute:   goal.Minute,
		AssistID: nullInt64Ptr(goal.AssistPlayerID),
		Side:     goal.Side,
	}
}

type GoalListing struct {
	ID           int64   `json:"id"`
	MatchID      int64   `json:"match_id"`
	Minute       int64   `json:"minute"`
	Side         string  `json:"side"`
	ScorerName   string  `json:"scorer_name"`
	AssistName   *string `json:"assist_name"`
	HomeTeamName string  `json:"home_team_name"`
	AwayTeamName string  `json:"away_team_name"`
}

func GoalListingsFromRows(rows []dbgen.ListGoalsRow) []GoalListing {
	listings := make([]GoalListing, 0, len(rows))
	for _, row := range rows {
		listing := GoalListing{
			ID:           row.ID,
			MatchID:      row.MatchID,
			Minute:       row.Minute,
			Side:         row.Side,
			ScorerName:   row.ScorerName,
			HomeTeamName: row.HomeTeamName,
			AwayTeamName: row.AwayTeamName,
		}
		if row.AssistName.Valid {
			name := row.AssistName.String
			listing.AssistName = &name
		}
		listings = append(listings, listing)
	}
	return listings
}

type CardListing struct {
	ID         int64  `json:"id"`
	MatchID    int64  `json:"match_id"`
	PlayerID   int64  `json:"player_id"`
	CardType   string `json:"card_type"`
	Minute     int64  `json:"minute"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	MatchLabel string `json:"match_label"`
}

func CardListingsFromRows(rows []dbgen.ListCardsRow) []CardListing {
	listings := make([]CardListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, CardListing{
			ID:         row.ID,
			MatchID:    row.MatchID,
			PlayerID:   row.PlayerID,
			CardType:   row.CardType,
			Minute:     row.Minute,
			PlayerName: row.PlayerName,
			TeamName:   row.TeamName,
			MatchLabel: MatchLabel(row.HomeTeamName, row.AwayTeamName, row.MatchDate),
		})
	}
	return listings
}

// MatchLabel renders "Home vs Away - DD/MM/YYYY". Dates that do not parse
// are shown as stored.
func MatchLabel(home, away, date string) string {
	return fmt.Sprintf("%s vs %s - %s", home, away, FormatDate(date, "02/01/2006"))
}

// FormatDate reformats a stored YYYY-MM-DD date with layout.
func FormatDate(date, layout string) string {
	parsed, err := time.Parse(leagues.DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(layout)
}

func nullInt64Ptr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	v := value.Int64
	return &v
}
