package service

import (
	"context"
	"fmt"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports"
)

// VoteService applies the same contract to both vote kinds: voting is an
// idempotent upsert on the (item, user) key, unvoting deletes the row and
// reports not-found when there is nothing to delete.
type VoteService struct {
	restaurants ports.RestaurantRepo
	timeSlots   ports.TimeSlotRepo
	users       ports.UserRepo
}

func NewVoteService(restaurants ports.RestaurantRepo, timeSlots ports.TimeSlotRepo, users ports.UserRepo) *VoteService {
	return &VoteService{
		restaurants: restaurants,
		timeSlots:   timeSlots,
		users:       users,
	}
}

func (s *VoteService) VoteRestaurant(ctx context.Context, restaurantID, userID string) (*domain.RestaurantVote, error) {
	vote, err := s.restaurants.UpsertVote(ctx, restaurantID, userID)
	if err != nil {
		return nil, fmt.Errorf("vote restaurant: %w", err)
	}

	voter, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get voter: %w", err)
	}
	vote.User = voter

	return vote, nil
}

func (s *VoteService) UnvoteRestaurant(ctx context.Context, restaurantID, userID string) error {
	return s.restaurants.DeleteVote(ctx, restaurantID, userID)
}

func (s *VoteService) VoteTimeSlot(ctx context.Context, timeSlotID, userID string) (*domain.TimeSlotVote, error) {
	vote, err := s.timeSlots.UpsertVote(ctx, timeSlotID, userID)
	if err != nil {
		return nil, fmt.Errorf("vote time slot: %w", err)
	}

	voter, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get voter: %w", err)
	}
	vote.User = voter

	return vote, nil
}

func (s *VoteService) UnvoteTimeSlot(ctx context.Context, timeSlotID, userID string) error {
	return s.timeSlots.DeleteVote(ctx, timeSlotID, userID)
}
