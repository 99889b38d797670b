package matches

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/api/htmx"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/models"
)

const (
	scoreChangedEvent     = "score-changed"
	standingsChangedEvent = "standings-changed"
)

type goalRequest struct {
	MatchID  int64  `json:"match_id"`
	ScorerID int64  `json:"scorer_id"`
	Minute   int64  `json:"minute"`
	AssistID *int64 `json:"assist_id"`
}

// GET /api/v1/goals
func HandleListGoals(w http.ResponseWriter, r *http.Request) {
	q := loadQueries(w, r)
	if q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	rows, err := q.ListGoals(ctx)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to load goals", err))
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, models.GoalListingsFromRows(rows))
}

// POST /api/v1/goals
func HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	if loadQueries(w, r) == nil {
		return
	}

	var req goalRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	goal, err := ledger.RegisterGoal(ctx, leagues.GoalInput{
		MatchID:  req.MatchID,
		ScorerID: req.ScorerID,
		Minute:   req.Minute,
		AssistID: req.AssistID,
	})
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	log.Ctx(r.Context()).Info().
		Int64("goal_id", goal.ID).
		Int64("match_id", goal.MatchID).
		Str("side", goal.Side).
		Msg("Goal registered")
	announceScoreChange(w, r)
	apiutil.WriteOK(w, r, http.StatusCreated, models.GoalFromDB(goal))
}

// DELETE /api/v1/goals/{id}
func HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if loadQueries(w, r) == nil {
		return
	}
	goalID, err := apiutil.PathID(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchesQueryTimeout)
	defer cancel()

	if err := ledger.DeleteGoal(ctx, goalID); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	log.Ctx(r.Context()).Info().Int64("goal_id", goalID).Msg("Goal deleted")
	announceScoreChange(w, r)
	w.WriteHeader(http.StatusNoContent)
}

// announceScoreChange lets htmx clients refresh score and standings views.
func announceScoreChange(w http.ResponseWriter, r *http.Request) {
	if !htmx.IsRequest(r) {
		return
	}
	for key, value := range htmx.Trigger(scoreChangedEvent, standingsChangedEvent) {
		w.Header().Set(key, value)
	}
}
