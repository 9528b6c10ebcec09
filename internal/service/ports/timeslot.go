package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type TimeSlotRepo interface {
	Create(ctx context.Context, ts *domain.TimeSlot) error
	UpsertVote(ctx context.Context, timeSlotID, userID string) (*domain.TimeSlotVote, error)
	DeleteVote(ctx context.Context, timeSlotID, userID string) error
}
