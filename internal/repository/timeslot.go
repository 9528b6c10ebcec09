package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TimeSlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTimeSlotRepo(db *dbpg.DB) *TimeSlotRepository {
	return &TimeSlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TimeSlotRepository) Create(ctx context.Context, ts *domain.TimeSlot) error {
	query := `INSERT INTO time_slots (id, event_id, start_time, end_time, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, ts.ID, ts.EventID, ts.StartTime, ts.EndTime, ts.CreatedAt)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert time slot: %w", err)
	}

	return nil
}

func (r *TimeSlotRepository) UpsertVote(ctx context.Context, timeSlotID, userID string) (*domain.TimeSlotVote, error) {
	insert := `INSERT INTO time_slot_votes (id, time_slot_id, user_id, created_at)
			   VALUES ($1, $2, $3, $4)
			   ON CONFLICT (time_slot_id, user_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, insert, uuid.New().String(), timeSlotID, userID, time.Now().UTC())
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return nil, fkErr
		}
		return nil, fmt.Errorf("insert time slot vote: %w", err)
	}

	query := `SELECT id, time_slot_id, user_id, created_at
			  FROM time_slot_votes
			  WHERE time_slot_id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, timeSlotID, userID)
	if err != nil {
		return nil, fmt.Errorf("get time slot vote: %w", err)
	}

	var v domain.TimeSlotVote
	if err = row.Scan(&v.ID, &v.TimeSlotID, &v.UserID, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("scan time slot vote: %w", err)
	}

	return &v, nil
}

func (r *TimeSlotRepository) DeleteVote(ctx context.Context, timeSlotID, userID string) error {
	query := `DELETE FROM time_slot_votes
			  WHERE time_slot_id=$1 AND user_id=$2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, timeSlotID, userID)
	if err != nil {
		return fmt.Errorf("delete time slot vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("vote rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrVoteNotFound
	}

	return nil
}
