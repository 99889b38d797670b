package matches

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
)

const defaultDaysBetweenRounds = 7

type scheduleRequest struct {
	TeamIDs           []int64 `json:"team_ids"`
	StartDate         string  `json:"start_date"`
	DaysBetweenRounds int     `json:"days_between_rounds"`
	KickoffTime       string  `json:"kickoff_time"`
	RefereeID         int64   `json:"referee_id"`
	VenueID           int64   `json:"venue_id"`
}

type scheduleResponse struct {
	Matches []dbgen.Match `json:"matches"`
}

// POST /api/v1/matches/schedule
func HandleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	if loadQueries(w, r) == nil {
		return
	}
	logger := log.Ctx(r.Context())

	var req scheduleRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if req.DaysBetweenRounds == 0 {
		req.DaysBetweenRounds = defaultDaysBetweenRounds
	}
	if req.RefereeID <= 0 || req.VenueID <= 0 {
		apiutil.WriteError(w, r, leagues.Validation("referee_id and venue_id are required"))
		return
	}
	startDate, err := leagues.ParseDate(req.StartDate)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Validation(err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	var created []dbgen.Match
	err = database.RunInTx(ctx, func(tx *appdb.DB) error {
		teams, err := loadScheduleTeams(ctx, tx.Queries, req.TeamIDs)
		if err != nil {
			return err
		}
		fixtures, err := leagues.PlanRoundRobin(teams, startDate, req.DaysBetweenRounds, req.KickoffTime)
		if err != nil {
			return leagues.Validation(err.Error())
		}

		created = make([]dbgen.Match, 0, len(fixtures))
		for _, fixture := range fixtures {
			match, err := tx.Queries.CreateMatch(ctx, dbgen.CreateMatchParams{
				HomeTeamID: fixture.HomeTeamID,
				AwayTeamID: fixture.AwayTeamID,
				RefereeID:  req.RefereeID,
				VenueID:    req.VenueID,
				MatchDate:  fixture.Date,
				MatchTime:  fixture.Time,
			})
			if err != nil {
				return apiutil.InsertError(err, "match already exists", "referee or venue not found")
			}
			created = append(created, match)
		}
		return nil
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	logger.Info().
		Int("teams", len(req.TeamIDs)).
		Int("matches", len(created)).
		Str("start_date", req.StartDate).
		Msg("Generated round-robin schedule")
	apiutil.WriteOK(w, r, http.StatusCreated, scheduleResponse{Matches: created})
}

func loadScheduleTeams(ctx context.Context, q *dbgen.Queries, teamIDs []int64) ([]dbgen.Team, error) {
	if len(teamIDs) < 2 {
		return nil, leagues.Validation("at least two team_ids are required")
	}
	teams := make([]dbgen.Team, 0, len(teamIDs))
	for _, id := range teamIDs {
		team, err := q.GetTeam(ctx, id)
		if err != nil {
			return nil, lookupError(err, fmt.Sprintf("team %d not found", id), "failed to load team")
		}
		teams = append(teams, team)
	}
	return teams, nil
}
