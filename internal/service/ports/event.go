package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.EventSummary, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
	// Delete removes the event and every dependent row in one transaction.
	Delete(ctx context.Context, eventID string) error
}
