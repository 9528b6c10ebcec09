package ports

import (
	"context"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
}
