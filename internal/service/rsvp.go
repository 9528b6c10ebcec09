package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports"
)

type RSVPService struct {
	rsvps ports.RSVPRepo
	users ports.UserRepo
}

func NewRSVPService(rsvps ports.RSVPRepo, users ports.UserRepo) *RSVPService {
	return &RSVPService{rsvps: rsvps, users: users}
}

// Set records the user's RSVP for the event, replacing any previous
// status. Transitions are unrestricted.
func (s *RSVPService) Set(ctx context.Context, eventID, userID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid rsvp status %q", domain.ErrValidation, status)
	}

	rsvp, err := s.rsvps.Upsert(ctx, &domain.RSVP{
		ID:      uuid.New().String(),
		EventID: eventID,
		UserID:  userID,
		Status:  status,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert rsvp: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	rsvp.User = user

	return rsvp, nil
}
