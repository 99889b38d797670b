package leagues

import (
	"context"
	"errors"
	"sort"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

type TeamStanding struct {
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// MatchScore is the part of a match the standings need.
type MatchScore struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
}

// ComputeStandings ranks every team by points, goal difference, goals for,
// then name and id. Every match counts as played, including fixtures whose
// score was never touched. Matches referencing unknown teams are ignored.
func ComputeStandings(teams []dbgen.Team, matches []MatchScore) []TeamStanding {
	byID := make(map[int64]*TeamStanding, len(teams))
	ordered := make([]*TeamStanding, 0, len(teams))
	for _, team := range teams {
		entry := &TeamStanding{TeamID: team.ID, TeamName: team.Name}
		byID[team.ID] = entry
		ordered = append(ordered, entry)
	}

	for _, match := range matches {
		home, homeOK := byID[match.HomeTeamID]
		away, awayOK := byID[match.AwayTeamID]
		if !homeOK || !awayOK {
			continue
		}
		home.record(match.HomeScore, match.AwayScore)
		away.record(match.AwayScore, match.HomeScore)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})

	standings := make([]TeamStanding, 0, len(ordered))
	for _, entry := range ordered {
		standings = append(standings, *entry)
	}
	return standings
}

func (s *TeamStanding) record(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	switch {
	case scored > conceded:
		s.Won++
	case scored < conceded:
		s.Lost++
	default:
		s.Drawn++
	}
	s.Points = pointsPerWin*s.Won + pointsPerDraw*s.Drawn
}

// LoadStandings reads all teams and matches and computes the table.
func LoadStandings(ctx context.Context, q *dbgen.Queries) ([]TeamStanding, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}

	teams, err := q.ListTeams(ctx)
	if err != nil {
		return nil, Storage("failed to load teams", err)
	}
	rows, err := q.ListMatchScores(ctx)
	if err != nil {
		return nil, Storage("failed to load matches", err)
	}

	matches := make([]MatchScore, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, MatchScore{
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeScore:  int(row.HomeScore),
			AwayScore:  int(row.AwayScore),
		})
	}
	return ComputeStandings(teams, matches), nil
}
