package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RSVPRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRSVPRepo(db *dbpg.DB) *RSVPRepository {
	return &RSVPRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert keys on the (event, user) unique constraint: a repeat RSVP
// overwrites the status in place, so exactly one row per pair ever exists.
func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *domain.RSVP) (*domain.RSVP, error) {
	query := `INSERT INTO rsvps (id, event_id, user_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $5)
			  ON CONFLICT (event_id, user_id)
			  DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
			  RETURNING id, event_id, user_id, status, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		rsvp.ID, rsvp.EventID, rsvp.UserID, rsvp.Status, time.Now().UTC(),
	)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return nil, fkErr
		}
		return nil, fmt.Errorf("upsert rsvp: %w", err)
	}

	var out domain.RSVP
	if err = row.Scan(&out.ID, &out.EventID, &out.UserID, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return nil, fkErr
		}
		return nil, fmt.Errorf("scan rsvp: %w", err)
	}

	return &out, nil
}
