package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type RSVPRepo interface {
	// Upsert creates the RSVP or overwrites its status, keyed on
	// (event, user).
	Upsert(ctx context.Context, rsvp *domain.RSVP) (*domain.RSVP, error)
}
