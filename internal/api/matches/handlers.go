// internal/api/matches/handlers.go
package matches

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

const matchesQueryTimeout = 5 * time.Second

var (
	database *appdb.DB
	ledger   *leagues.Ledger
	initOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(db *appdb.DB, goalLedger *leagues.Ledger) {
	if db == nil || goalLedger == nil {
		return
	}
	initOnce.Do(func() {
		database = db
		ledger = goalLedger
	})
}

func loadQueries(w http.ResponseWriter, r *http.Request) *dbgen.Queries {
	if database == nil || database.Queries == nil {
		log.Ctx(r.Context()).Error().Msg("Database queries not initialized")
		apiutil.WriteErrorMessage(w, r, http.StatusInternalServerError, "Internal Server Error")
		return nil
	}
	return database.Queries
}

// GET /api/v1/matches
func HandleListMatches(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	matches, err := q.ListMatches(ctx)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load matches", err))
		return
	}
	if matches == nil {
		matches = []dbgen.ListMatchesRow{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, matches)
}

// GET /api/v1/matches/{id}
func HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	matchID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	match, err := q.GetMatch(ctx, matchID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "match not found", "failed to load match"))
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, match)
}

// GET /api/v1/matches/{id}/players
func HandleListMatchPlayers(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	matchID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	teams, err := q.GetMatchTeams(ctx, matchID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "match not found", "failed to load match"))
		return
	}
	players, err := q.ListPlayersForTeams(ctx, dbgen.ListPlayersForTeamsParams{
		TeamID:   teams.HomeTeamID,
		TeamID_2: teams.AwayTeamID,
	})
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load players", err))
		return
	}
	if players == nil {
		players = []dbgen.ListPlayersForTeamsRow{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, players)
}

// POST /api/v1/matches
func HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	var input models.MatchInput
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	input, err := input.Normalize()
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	match, err := q.CreateMatch(ctx, dbgen.CreateMatchParams{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		RefereeID:  input.RefereeID,
		VenueID:    input.VenueID,
		MatchDate:  input.Date,
		MatchTime:  input.Time,
	})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "match already exists", "team, referee or venue not found"))
		return
	}

	log.Ctx(r.Context()).Info().
		Int64("match_id", match.ID).
		Int64("home_team_id", match.HomeTeamID).
		Int64("away_team_id", match.AwayTeamID).
		Msg("Match created")
	apiutil.WriteOK(w, r, http.StatusCreated, match)
}

// DELETE /api/v1/matches/{id}
func HandleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	matchID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	deleted, err := q.DeleteMatch(ctx, matchID)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.DeleteError(err, "match has recorded goals or cards"))
		return
	}
	if deleted == 0 {
		apiutil.WriteError(w, r, leagues.NotFound("match not found"))
		return
	}

	log.Ctx(r.Context()).Info().Int64("match_id", matchID).Msg("Match deleted")
	w.WriteHeader(http.StatusNoContent)
}

func lookupError(err error, missingMessage, storageMessage string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return leagues.NotFound(missingMessage)
	}
	return leagues.Storage(storageMessage, err)
}
