package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// foreignKeyErr translates a Postgres foreign-key violation into the
// domain not-found error for the missing parent, so that writes against a
// nonexistent event/restaurant/time slot/user surface as 404 rather than
// a leaked storage failure. Returns nil when err is not an FK violation.
func foreignKeyErr(err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return nil
	}

	switch {
	case strings.Contains(pgErr.Constraint, "restaurant_id"):
		return domain.ErrRestaurantNotFound
	case strings.Contains(pgErr.Constraint, "time_slot_id"):
		return domain.ErrTimeSlotNotFound
	case strings.Contains(pgErr.Constraint, "event_id"):
		return domain.ErrEventNotFound
	case strings.Contains(pgErr.Constraint, "user_id"),
		strings.Contains(pgErr.Constraint, "created_by"):
		return domain.ErrUserNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
