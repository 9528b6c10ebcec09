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

type RestaurantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRestaurantRepo(db *dbpg.DB) *RestaurantRepository {
	return &RestaurantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rt *domain.Restaurant) error {
	query := `INSERT INTO restaurants (id, event_id, name, address, place_id, latitude, longitude, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rt.ID, rt.EventID, rt.Name, rt.Address,
		rt.PlaceID, rt.Latitude, rt.Longitude, rt.CreatedAt,
	)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}

	return nil
}

// UpsertVote inserts the (restaurant, user) vote if absent; the unique
// composite key is the sole arbiter under concurrency, so a second vote
// returns the existing row unchanged.
func (r *RestaurantRepository) UpsertVote(ctx context.Context, restaurantID, userID string) (*domain.RestaurantVote, error) {
	insert := `INSERT INTO restaurant_votes (id, restaurant_id, user_id, created_at)
			   VALUES ($1, $2, $3, $4)
			   ON CONFLICT (restaurant_id, user_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, insert, uuid.New().String(), restaurantID, userID, time.Now().UTC())
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return nil, fkErr
		}
		return nil, fmt.Errorf("insert restaurant vote: %w", err)
	}

	query := `SELECT id, restaurant_id, user_id, created_at
			  FROM restaurant_votes
			  WHERE restaurant_id=$1 AND user_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, restaurantID, userID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant vote: %w", err)
	}

	var v domain.RestaurantVote
	if err = row.Scan(&v.ID, &v.RestaurantID, &v.UserID, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("scan restaurant vote: %w", err)
	}

	return &v, nil
}

func (r *RestaurantRepository) DeleteVote(ctx context.Context, restaurantID, userID string) error {
	query := `DELETE FROM restaurant_votes
			  WHERE restaurant_id=$1 AND user_id=$2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, restaurantID, userID)
	if err != nil {
		return fmt.Errorf("delete restaurant vote: %w", err)
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
