package service

import (
	"context"
	"testing"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRSVPService_Set_Success(t *testing.T) {
	rsvps := mocks.NewMockRSVPRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewRSVPService(rsvps, users)

	user := &domain.User{ID: "u1", Username: "kiwi_foodie"}
	stored := &domain.RSVP{ID: "rs1", EventID: "e1", UserID: "u1", Status: domain.RSVPStatusGoing}

	rsvps.EXPECT().Upsert(mock.Anything, mock.Anything).Return(stored, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	rsvp, err := svc.Set(context.Background(), "e1", "u1", domain.RSVPStatusGoing)

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPStatusGoing, rsvp.Status)
	assert.Equal(t, user, rsvp.User)
}

func TestRSVPService_Set_OverwritesStatus(t *testing.T) {
	rsvps := mocks.NewMockRSVPRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewRSVPService(rsvps, users)

	user := &domain.User{ID: "u1"}
	updated := &domain.RSVP{ID: "rs1", EventID: "e1", UserID: "u1", Status: domain.RSVPStatusNotGoing}

	rsvps.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(r *domain.RSVP) bool {
		return r.EventID == "e1" && r.UserID == "u1" && r.Status == domain.RSVPStatusNotGoing
	})).Return(updated, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	rsvp, err := svc.Set(context.Background(), "e1", "u1", domain.RSVPStatusNotGoing)

	require.NoError(t, err)
	assert.Equal(t, "rs1", rsvp.ID)
	assert.Equal(t, domain.RSVPStatusNotGoing, rsvp.Status)
}

func TestRSVPService_Set_InvalidStatus(t *testing.T) {
	rsvps := mocks.NewMockRSVPRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewRSVPService(rsvps, users)

	_, err := svc.Set(context.Background(), "e1", "u1", "attending")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRSVPService_Set_EventNotFound(t *testing.T) {
	rsvps := mocks.NewMockRSVPRepo(t)
	users := mocks.NewMockUserRepo(t)
	svc := NewRSVPService(rsvps, users)

	rsvps.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Set(context.Background(), "missing", "u1", domain.RSVPStatusMaybe)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
