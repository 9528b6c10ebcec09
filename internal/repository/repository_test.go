package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestForeignKeyErr_MapsConstraintToNotFound(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{"restaurant_votes_restaurant_id_fkey", domain.ErrRestaurantNotFound},
		{"time_slot_votes_time_slot_id_fkey", domain.ErrTimeSlotNotFound},
		{"restaurants_event_id_fkey", domain.ErrEventNotFound},
		{"rsvps_user_id_fkey", domain.ErrUserNotFound},
		{"events_created_by_fkey", domain.ErrUserNotFound},
	}

	for _, tc := range cases {
		err := &pq.Error{Code: pgForeignKeyViolation, Constraint: tc.constraint}
		assert.ErrorIs(t, foreignKeyErr(err), tc.want, "constraint %s", tc.constraint)
	}
}

func TestForeignKeyErr_IgnoresOtherErrors(t *testing.T) {
	assert.NoError(t, foreignKeyErr(errors.New("connection reset")))
	assert.NoError(t, foreignKeyErr(&pq.Error{Code: pgUniqueViolation, Constraint: "users_username_key"}))
	assert.NoError(t, foreignKeyErr(&pq.Error{Code: pgForeignKeyViolation, Constraint: "something_else"}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: pgUniqueViolation}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueViolation(errors.New("not a pq error")))
}
