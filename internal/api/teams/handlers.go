// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/cache"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

const teamsQueryTimeout = 5 * time.Second

var (
	queries  *dbgen.Queries
	store    cache.Store
	cacheTTL time.Duration
	initOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
// A nil store disables caching of the team list.
func InitHandlers(q *dbgen.Queries, s cache.Store, ttl time.Duration) {
	if q == nil {
		return
	}
	initOnce.Do(func() {
		queries = q
		store = s
		cacheTTL = ttl
	})
}

func loadQueries(w http.ResponseWriter, r *http.Request) *dbgen.Queries {
	if queries == nil {
		log.Ctx(r.Context()).Error().Msg("Database queries not initialized")
		apiutil.WriteErrorMessage(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
	return queries
}

// GET /api/v1/teams
func HandleListTeams(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	teams, err := cache.ReadThrough(ctx, store, cache.KeyTeams, cacheTTL, func(ctx context.Context) ([]dbgen.Team, error) {
		return q.ListTeams(ctx)
	})
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load teams", err))
		return
	}
	if teams == nil {
		teams = []dbgen.Team{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, teams)
}

// GET /api/v1/teams/{id}
func HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	teamID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	team, err := q.GetTeam(ctx, teamID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "team not found", "failed to load team"))
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, team)
}

// POST /api/v1/teams
func HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	input, err := decodeTeam(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{Name: input.Name, City: input.City})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "a team with that name already exists", "team not found"))
		return
	}
	cache.Invalidate(ctx, store, cache.KeyTeams)

	log.Ctx(r.Context()).Info().Int64("team_id", team.ID).Msg("Team created")
	apiutil.WriteOK(w, r, http.StatusCreated, team)
}

// PUT /api/v1/teams/{id}
func HandleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	teamID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	input, err := decodeTeam(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	team, err := q.UpdateTeam(ctx, dbgen.UpdateTeamParams{Name: input.Name, City: input.City, ID: teamID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			apiutil.WriteError(w, r, leagues.NotFound("team not found"))
			return
		}
		apiutil.WriteError(w, r, apiutil.InsertError(err, "a team with that name already exists", "team not found"))
		return
	}
	cache.Invalidate(ctx, store, cache.KeyTeams)

	log.Ctx(r.Context()).Info().Int64("team_id", team.ID).Msg("Team updated")
	apiutil.WriteOK(w, r, http.StatusOK, team)
}

// DELETE /api/v1/teams/{id}
func HandleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	teamID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	deleted, err := q.DeleteTeam(ctx, teamID)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.DeleteError(err, "team still has players or matches"))
		return
	}
	if deleted == 0 {
		apiutil.WriteError(w, r, leagues.NotFound("team not found"))
		return
	}
	cache.Invalidate(ctx, store, cache.KeyTeams)

	log.Ctx(r.Context()).Info().Int64("team_id", teamID).Msg("Team deleted")
	w.WriteHeader(http.StatusNoContent)
}

func decodeTeam(r *http.Request) (models.TeamInput, error) {
	var input models.TeamInput
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		return input, err
	}
	return input.Normalize()
}

// lookupError maps a failed single-row read to NotFound or Storage.
func lookupError(err error, missingMessage, storageMessage string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return leagues.NotFound(missingMessage)
	}
	return leagues.Storage(storageMessage, err)
}
