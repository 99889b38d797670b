// internal/api/officials/handlers.go
package officials

import (
	"context"
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

const officialsQueryTimeout = 5 * time.Second

var (
	queries  *dbgen.Queries
	store    cache.Store
	cacheTTL time.Duration
	initOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
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

// GET /api/v1/referees
func HandleListReferees(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), officialsQueryTimeout)
	defer cancel()

	referees, err := cache.ReadThrough(ctx, store, cache.KeyReferees, cacheTTL, func(ctx context.Context) ([]dbgen.Referee, error) {
		return q.ListReferees(ctx)
	})
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load referees", err))
		return
	}
	if referees == nil {
		referees = []dbgen.Referee{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, referees)
}

// POST /api/v1/referees
func HandleCreateReferee(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	var input models.RefereeInput
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	input, err := input.Normalize()
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), officialsQueryTimeout)
	defer cancel()

	referee, err := q.CreateReferee(ctx, dbgen.CreateRefereeParams{FullName: input.FullName, Role: input.Role})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "referee already exists", "referee not found"))
		return
	}
	cache.Invalidate(ctx, store, cache.KeyReferees)

	log.Ctx(r.Context()).Info().Int64("referee_id", referee.ID).Msg("Referee created")
	apiutil.WriteOK(w, r, http.StatusCreated, referee)
}

// DELETE /api/v1/referees/{id}
func HandleDeleteReferee(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, "referee", cache.KeyReferees, func(ctx context.Context, q *dbgen.Queries, id int64) (int64, error) {
		return q.DeleteReferee(ctx, id)
	})
}

// GET /api/v1/venues
func HandleListVenues(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), officialsQueryTimeout)
	defer cancel()

	venues, err := cache.ReadThrough(ctx, store, cache.KeyVenues, cacheTTL, func(ctx context.Context) ([]dbgen.Venue, error) {
		return q.ListVenues(ctx)
	})
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load venues", err))
		return
	}
	if venues == nil {
		venues = []dbgen.Venue{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, venues)
}

// POST /api/v1/venues
func HandleCreateVenue(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	var input models.VenueInput
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	input, err := input.Normalize()
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), officialsQueryTimeout)
	defer cancel()

	venue, err := q.CreateVenue(ctx, dbgen.CreateVenueParams{Name: input.Name, Location: input.Location})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "venue already exists", "venue not found"))
		return
	}
	cache.Invalidate(ctx, store, cache.KeyVenues)

	log.Ctx(r.Context()).Info().Int64("venue_id", venue.ID).Msg("Venue created")
	apiutil.WriteOK(w, r, http.StatusCreated, venue)
}

// DELETE /api/v1/venues/{id}
func HandleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, "venue", cache.KeyVenues, func(ctx context.Context, q *dbgen.Queries, id int64) (int64, error) {
		return q.DeleteVenue(ctx, id)
	})
}

func handleDelete(w http.ResponseWriter, r *http.Request, entity, cacheKey string, del func(context.Context, *dbgen.Queries, int64) (int64, error)) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	id, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), officialsQueryTimeout)
	defer cancel()

	deleted, err := del(ctx, q, id)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.DeleteError(err, entity+" is assigned to matches"))
		return
	}
	if deleted == 0 {
		apiutil.WriteError(w, r, leagues.NotFound(entity+" not found"))
		return
	}
	cache.Invalidate(ctx, store, cacheKey)

	log.Ctx(r.Context()).Info().Str("entity", entity).Int64("id", id).Msg("Official record deleted")
	w.WriteHeader(http.StatusNoContent)
}
