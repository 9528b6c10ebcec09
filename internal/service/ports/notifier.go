package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type EventNotifier interface {
	NotifyEventCreated(ctx context.Context, creator *domain.User, event *domain.Event)
}
