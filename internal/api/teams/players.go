package teams

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

// GET /api/v1/players
func HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	players, err := q.ListPlayers(ctx)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load players", err))
		return
	}
	if players == nil {
		players = []dbgen.ListPlayersRow{}
	}
	apiutil.WriteOK(w, r, http.StatusOK, players)
}

// GET /api/v1/players/{id}
func HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	playerID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	player, err := q.GetPlayer(ctx, playerID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "player not found", "failed to load player"))
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, player)
}

// POST /api/v1/players
func HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	var input models.PlayerInput
	if err := apiutil.DecodeJSON(r, &input); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	input, err := input.Normalize()
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	player, err := q.CreatePlayer(ctx, dbgen.CreatePlayerParams{
		FullName:  input.FullName,
		BirthDate: input.BirthDate,
		Position:  input.Position,
		TeamID:    input.TeamID,
	})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "player already exists", "team not found"))
		return
	}

	log.Ctx(r.Context()).Info().Int64("player_id", player.ID).Int64("team_id", player.TeamID).Msg("Player created")
	apiutil.WriteOK(w, r, http.StatusCreated, player)
}

// DELETE /api/v1/players/{id}
func HandleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	playerID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamsQueryTimeout)
	defer cancel()

	deleted, err := q.DeletePlayer(ctx, playerID)
	if err != nil {
		apiutil.WriteError(w, r, apiutil.DeleteError(err, "player has recorded goals or cards"))
		return
	}
	if deleted == 0 {
		apiutil.WriteError(w, r, leagues.NotFound("player not found"))
		return
	}

	log.Ctx(r.Context()).Info().Int64("player_id", playerID).Msg("Player deleted")
	w.WriteHeader(http.StatusNoContent)
}
