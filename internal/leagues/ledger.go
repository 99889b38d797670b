package leagues

import (
	"context"
	"database/sql"
	"errors"

	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

const (
	SideHome = "home"
	SideAway = "away"
)

// GoalInput describes a goal to register. Zero IDs and minutes are treated as
// missing.
type GoalInput struct {
	MatchID  int64
	ScorerID int64
	Minute   int64
	AssistID *int64
}

// Ledger keeps each match score equal to the goals recorded against it.
type Ledger struct {
	db *appdb.DB
}

func NewLedger(database *appdb.DB) *Ledger {
	return &Ledger{db: database}
}

// RegisterGoal credits the scorer's side of the match and inserts the goal
// row in one transaction.
func (l *Ledger) RegisterGoal(ctx context.Context, input GoalInput) (dbgen.Goal, error) {
	if err := input.validate(); err != nil {
		return dbgen.Goal{}, err
	}

	var goal dbgen.Goal
	err := l.db.RunInTx(ctx, func(tx *appdb.DB) error {
		scorerTeamID, err := tx.Queries.GetPlayerTeamID(ctx, input.ScorerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NotFound("scorer not found")
			}
			return Storage("failed to load scorer", err)
		}

		teams, err := tx.Queries.GetMatchTeams(ctx, input.MatchID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NotFound("match not found")
			}
			return Storage("failed to load match", err)
		}

		side, err := scoringSide(scorerTeamID, teams)
		if err != nil {
			return err
		}

		if side == SideHome {
			_, err = tx.Queries.IncrementHomeScore(ctx, input.MatchID)
		} else {
			_, err = tx.Queries.IncrementAwayScore(ctx, input.MatchID)
		}
		if err != nil {
			return Storage("failed to update score", err)
		}

		assist := sql.NullInt64{}
		if input.AssistID != nil {
			assist = sql.NullInt64{Int64: *input.AssistID, Valid: true}
		}
		goal, err = tx.Queries.CreateGoal(ctx, dbgen.CreateGoalParams{
			MatchID:        input.MatchID,
			PlayerID:       input.ScorerID,
			Minute:         input.Minute,
			AssistPlayerID: assist,
			Side:           side,
		})
		if err != nil {
			if appdb.IsForeignKeyViolation(err) {
				return NotFound("assisting player not found")
			}
			return Storage("failed to record goal", err)
		}
		return nil
	})
	if err != nil {
		return dbgen.Goal{}, classifyTxError(err)
	}
	return goal, nil
}

// DeleteGoal removes a goal and takes it back off the side it was credited
// to. Scores never drop below zero.
func (l *Ledger) DeleteGoal(ctx context.Context, goalID int64) error {
	if goalID <= 0 {
		return Validation("goal id must be a positive integer")
	}

	err := l.db.RunInTx(ctx, func(tx *appdb.DB) error {
		goal, err := tx.Queries.GetGoal(ctx, goalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return NotFound("goal not found")
			}
			return Storage("failed to load goal", err)
		}

		if _, err := tx.Queries.DeleteGoal(ctx, goalID); err != nil {
			return Storage("failed to delete goal", err)
		}

		switch goal.Side {
		case SideHome:
			_, err = tx.Queries.DecrementHomeScore(ctx, goal.MatchID)
		case SideAway:
			_, err = tx.Queries.DecrementAwayScore(ctx, goal.MatchID)
		}
		if err != nil {
			return Storage("failed to update score", err)
		}
		return nil
	})
	return classifyTxError(err)
}

func (in GoalInput) validate() error {
	switch {
	case in.MatchID <= 0:
		return Validation("match_id is required")
	case in.ScorerID <= 0:
		return Validation("scorer_id is required")
	case in.Minute <= 0:
		return Validation("minute must be a positive integer")
	case in.AssistID != nil && *in.AssistID <= 0:
		return Validation("assist_id must be a positive integer")
	}
	return nil
}

func scoringSide(scorerTeamID int64, teams dbgen.GetMatchTeamsRow) (string, error) {
	switch scorerTeamID {
	case teams.HomeTeamID:
		return SideHome, nil
	case teams.AwayTeamID:
		return SideAway, nil
	default:
		return "", InvalidRelationship("player not part of either team in this match")
	}
}

// classifyTxError keeps taxonomy errors as they are and wraps anything else,
// such as a failed begin or commit, as a storage failure.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Storage("transaction failed", err)
}
