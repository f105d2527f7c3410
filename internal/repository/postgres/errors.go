package postgres

import (
	"errors"

	"github.com/lib/pq"

	"notikums/internal/domain"
)

// Constraint names from schema.go. Unique violations are classified by
// constraint so callers can tell an identifier collision (retryable with a
// fresh token) from a per-event user_name conflict (a client error).
const (
	constraintEventPK          = "events_pkey"
	constraintAttendeePK       = "attendees_pkey"
	constraintAttendeeUserName = "attendees_event_user_name_key"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver-level constraint violations into domain
// errors. Anything unrecognized is returned as-is.
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		switch pqErr.Constraint {
		case constraintAttendeeUserName:
			return domain.ErrDuplicateUserName
		case constraintEventPK, constraintAttendeePK:
			return domain.ErrDuplicateID
		}
		return domain.ErrInvalidInput
	case pqForeignKeyViolation:
		// Parent event vanished between existence check and insert.
		return domain.ErrNotFound
	}
	if pqErr.Code.Class() == "23" {
		return domain.ErrInvalidInput
	}
	return err
}
