package apiutil

import (
	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/leagues"
)

// InsertError classifies a failed insert or update: unique violations become
// conflicts and foreign key violations mean a referenced row is missing.
func InsertError(err error, conflictMessage, missingMessage string) error {
	switch {
	case db.IsUniqueViolation(err):
		return leagues.Conflict(conflictMessage)
	case db.IsForeignKeyViolation(err):
		return leagues.NotFound(missingMessage)
	case db.IsCheckViolation(err):
		return leagues.Validation("value out of range")
	default:
		return leagues.Storage("failed to save", err)
	}
}

// DeleteError classifies a failed delete: foreign key violations mean other
// rows still reference the target.
func DeleteError(err error, dependencyMessage string) error {
	if db.IsForeignKeyViolation(err) {
		return leagues.DependencyExists(dependencyMessage)
	}
	return leagues.Storage("failed to delete", err)
}
