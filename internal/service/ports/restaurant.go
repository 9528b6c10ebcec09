package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type RestaurantRepo interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	// UpsertVote is idempotent on (restaurant, user): an existing vote is
	// returned unchanged.
	UpsertVote(ctx context.Context, restaurantID, userID string) (*domain.RestaurantVote, error)
	DeleteVote(ctx context.Context, restaurantID, userID string) error
}
