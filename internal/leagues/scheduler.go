package leagues

import (
	"errors"
	"fmt"
	"strings"
	"time"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Fixture is one planned match of a round-robin.
type Fixture struct {
	Round      int    `json:"round"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

// PlanRoundRobin pairs every team with every other team once using the
// circle method. Round n is played daysBetweenRounds*(n-1) days after
// startDate at kickoff. With an odd team count one team rests each round.
func PlanRoundRobin(teams []dbgen.Team, startDate time.Time, daysBetweenRounds int, kickoff string) ([]Fixture, error) {
	if len(teams) < 2 {
		return nil, errors.New("at least two teams are required")
	}
	if daysBetweenRounds <= 0 {
		return nil, errors.New("days between rounds must be positive")
	}
	kickoffTime, err := ParseTimeOfDay(kickoff)
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(teams))
	for _, team := range teams {
		if _, ok := seen[team.ID]; ok {
			return nil, fmt.Errorf("team %d listed more than once", team.ID)
		}
		seen[team.ID] = struct{}{}
	}

	startDate = truncateDate(startDate)
	pairs := buildRoundRobinPairs(teams)
	fixtures := make([]Fixture, 0, len(pairs))
	for _, pair := range pairs {
		day := startDate.AddDate(0, 0, (pair.Round-1)*daysBetweenRounds)
		fixtures = append(fixtures, Fixture{
			Round:      pair.Round,
			HomeTeamID: pair.HomeTeam.ID,
			AwayTeamID: pair.AwayTeam.ID,
			Date:       day.Format(DateLayout),
			Time:       kickoffTime.Format(TimeLayout),
		})
	}
	return fixtures, nil
}

type roundPair struct {
	Round    int
	HomeTeam dbgen.Team
	AwayTeam dbgen.Team
}

func buildRoundRobinPairs(teams []dbgen.Team) []roundPair {
	working := make([]*dbgen.Team, 0, len(teams)+1)
	for i := range teams {
		working = append(working, &teams[i])
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	rounds := len(working) - 1
	pairs := make([]roundPair, 0, rounds*len(working)/2)

	for round := 0; round < rounds; round++ {
		for i := 0; i < len(working)/2; i++ {
			left := working[i]
			right := working[len(working)-1-i]
			if left == nil || right == nil {
				continue
			}
			home, away := *left, *right
			// Alternate the fixed team between home and away.
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, roundPair{Round: round + 1, HomeTeam: home, AwayTeam: away})
		}
		rotateTeams(working)
	}
	return pairs
}

func rotateTeams(teams []*dbgen.Team) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}

// ParseDate accepts dates as YYYY-MM-DD.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("date must be in YYYY-MM-DD format")
	}
	return parsed, nil
}

// ParseTimeOfDay accepts HH:MM or H:MM AM/PM.
func ParseTimeOfDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("time is required")
	}
	parsed, err := time.Parse(TimeLayout, raw)
	if err != nil {
		formats := []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}
		for _, format := range formats {
			if parsed, err = time.Parse(format, strings.ToUpper(raw)); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, errors.New("time must be in HH:MM or H:MM AM/PM format")
	}
	return parsed, nil
}

func truncateDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}
