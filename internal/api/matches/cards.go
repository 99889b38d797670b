package matches

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

// GET /api/v1/cards
func HandleListCards(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	rows, err := q.ListCards(ctx)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load cards", err))
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, models.CardListingsFromRows(rows))
}

// POST /api/v1/cards
func HandleCreateCard(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	var input models.CardInput
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

	teams, err := q.GetMatchTeams(ctx, input.MatchID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "match not found", "failed to load match"))
		return
	}
	playerTeamID, err := q.GetPlayerTeamID(ctx, input.PlayerID)
	if err != nil {
		apiutil.WriteError(w, r, lookupError(err, "player not found", "failed to load player"))
		return
	}
	if playerTeamID != teams.HomeTeamID && playerTeamID != teams.AwayTeamID {
		apiutil.WriteError(w, r, leagues.InvalidRelationship("player not part of either team in this match"))
		return
	}

	card, err := q.CreateCard(ctx, dbgen.CreateCardParams{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		CardType: input.CardType,
		Minute:   input.Minute,
	})
	if err != nil {
		apiutil.WriteError(w, r, apiutil.InsertError(err, "card already exists", "match or player not found"))
		return
	}

	log.Ctx(r.Context()).Info().
		Int64("card_id", card.ID).
		Int64("match_id", card.MatchID).
		Str("card_type", card.CardType).
		Msg("Card recorded")
	apiutil.WriteOK(w, r, http.StatusCreated, card)
}

// DELETE /api/v1/cards/{id}
func HandleDeleteCard(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}
	cardID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	deleted, err := q.DeleteCard(ctx, cardID)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to delete card", err))
		return
	}
	if deleted == 0 {
		apiutil.WriteError(w, r, leagues.NotFound("card not found"))
		return
	}

	log.Ctx(r.Context()).Info().Int64("card_id", cardID).Msg("Card deleted")
	w.WriteHeader(http.StatusNoContent)
}
