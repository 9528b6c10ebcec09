package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, event_id, user_id, content, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.EventID, c.UserID, c.Content, c.CreatedAt)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}
