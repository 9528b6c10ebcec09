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

func newVoteService(t *testing.T) (*VoteService, *mocks.MockRestaurantRepo, *mocks.MockTimeSlotRepo, *mocks.MockUserRepo) {
	t.Helper()
	restaurants := mocks.NewMockRestaurantRepo(t)
	timeSlots := mocks.NewMockTimeSlotRepo(t)
	users := mocks.NewMockUserRepo(t)
	return NewVoteService(restaurants, timeSlots, users), restaurants, timeSlots, users
}

func TestVoteService_VoteRestaurant_Success(t *testing.T) {
	svc, restaurants, _, users := newVoteService(t)

	voter := &domain.User{ID: "u1", Username: "kiwi_foodie"}
	vote := &domain.RestaurantVote{ID: "v1", RestaurantID: "r1", UserID: "u1"}

	restaurants.EXPECT().UpsertVote(mock.Anything, "r1", "u1").Return(vote, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(voter, nil)

	result, err := svc.VoteRestaurant(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "v1", result.ID)
	assert.Equal(t, voter, result.User)
}

func TestVoteService_VoteRestaurant_Idempotent(t *testing.T) {
	svc, restaurants, _, users := newVoteService(t)

	voter := &domain.User{ID: "u1"}
	existing := &domain.RestaurantVote{ID: "v1", RestaurantID: "r1", UserID: "u1"}

	restaurants.EXPECT().UpsertVote(mock.Anything, "r1", "u1").Return(existing, nil).Times(2)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(voter, nil).Times(2)

	first, err := svc.VoteRestaurant(context.Background(), "r1", "u1")
	require.NoError(t, err)
	second, err := svc.VoteRestaurant(context.Background(), "r1", "u1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestVoteService_VoteRestaurant_NotFound(t *testing.T) {
	svc, restaurants, _, _ := newVoteService(t)

	restaurants.EXPECT().UpsertVote(mock.Anything, "missing", "u1").Return(nil, domain.ErrRestaurantNotFound)

	_, err := svc.VoteRestaurant(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestVoteService_UnvoteRestaurant_Success(t *testing.T) {
	svc, restaurants, _, _ := newVoteService(t)

	restaurants.EXPECT().DeleteVote(mock.Anything, "r1", "u1").Return(nil)

	err := svc.UnvoteRestaurant(context.Background(), "r1", "u1")

	require.NoError(t, err)
}

func TestVoteService_UnvoteRestaurant_NoVote(t *testing.T) {
	svc, restaurants, _, _ := newVoteService(t)

	restaurants.EXPECT().DeleteVote(mock.Anything, "r1", "u1").Return(domain.ErrVoteNotFound)

	err := svc.UnvoteRestaurant(context.Background(), "r1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)
}

func TestVoteService_VoteTimeSlot_Success(t *testing.T) {
	svc, _, timeSlots, users := newVoteService(t)

	voter := &domain.User{ID: "u1", Username: "kiwi_foodie"}
	vote := &domain.TimeSlotVote{ID: "v1", TimeSlotID: "t1", UserID: "u1"}

	timeSlots.EXPECT().UpsertVote(mock.Anything, "t1", "u1").Return(vote, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(voter, nil)

	result, err := svc.VoteTimeSlot(context.Background(), "t1", "u1")

	require.NoError(t, err)
	assert.Equal(t, voter, result.User)
}

func TestVoteService_VoteTimeSlot_NotFound(t *testing.T) {
	svc, _, timeSlots, _ := newVoteService(t)

	timeSlots.EXPECT().UpsertVote(mock.Anything, "missing", "u1").Return(nil, domain.ErrTimeSlotNotFound)

	_, err := svc.VoteTimeSlot(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeSlotNotFound)
}

func TestVoteService_UnvoteTimeSlot_NoVote(t *testing.T) {
	svc, _, timeSlots, _ := newVoteService(t)

	timeSlots.EXPECT().DeleteVote(mock.Anything, "t1", "u1").Return(domain.ErrVoteNotFound)

	err := svc.UnvoteTimeSlot(context.Background(), "t1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)
}
