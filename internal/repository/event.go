package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, date, start_time, end_time, location, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date,
		e.StartTime, e.EndTime, e.Location, e.CreatedByID, e.CreatedAt,
	)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT e.id, e.title, e.description, e.date, e.start_time, e.end_time, e.location,
					 e.created_by, e.created_at, e.updated_at,
					 u.id, u.username, u.created_at
			  FROM events e
			  JOIN users u ON u.id = e.created_by
			  WHERE e.id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// List returns the calendar projection: events ordered by date ascending,
// each with child row counts instead of child payloads.
func (r *EventRepository) List(ctx context.Context) ([]*domain.EventSummary, error) {
	query := `SELECT e.id, e.title, e.description, e.date, e.start_time, e.end_time, e.location,
					 e.created_by, e.created_at, e.updated_at,
					 u.id, u.username, u.created_at,
					 (SELECT COUNT(*) FROM rsvps v WHERE v.event_id = e.id),
					 (SELECT COUNT(*) FROM restaurants rt WHERE rt.event_id = e.id),
					 (SELECT COUNT(*) FROM comments c WHERE c.event_id = e.id)
			  FROM events e
			  JOIN users u ON u.id = e.created_by
			  ORDER BY e.date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventSummary
	for rows.Next() {
		var s domain.EventSummary
		var creator domain.User
		if err = rows.Scan(
			&s.Event.ID, &s.Event.Title, &s.Event.Description, &s.Event.Date,
			&s.Event.StartTime, &s.Event.EndTime, &s.Event.Location,
			&s.Event.CreatedByID, &s.Event.CreatedAt, &s.Event.UpdatedAt,
			&creator.ID, &creator.Username, &creator.CreatedAt,
			&s.Counts.RSVPs, &s.Counts.Restaurants, &s.Counts.Comments,
		); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		s.Event.CreatedBy = &creator
		res = append(res, &s)
	}

	return res, rows.Err()
}

// GetDetails loads the whole aggregate: restaurants with votes and voter
// identities, time slots (start time ascending) with votes, RSVPs and
// comments (newest first) with their users.
func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	details := &domain.EventDetails{Event: *event}

	if details.Restaurants, err = r.eventRestaurants(ctx, eventID); err != nil {
		return nil, err
	}
	if details.TimeSlots, err = r.eventTimeSlots(ctx, eventID); err != nil {
		return nil, err
	}
	if details.RSVPs, err = r.eventRSVPs(ctx, eventID); err != nil {
		return nil, err
	}
	if details.Comments, err = r.eventComments(ctx, eventID); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *EventRepository) eventRestaurants(ctx context.Context, eventID string) ([]domain.Restaurant, error) {
	query := `SELECT id, event_id, name, address, place_id, latitude, longitude, created_at
			  FROM restaurants
			  WHERE event_id=$1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	byID := make(map[string]int)
	for rows.Next() {
		var rt domain.Restaurant
		if err = rows.Scan(
			&rt.ID, &rt.EventID, &rt.Name, &rt.Address,
			&rt.PlaceID, &rt.Latitude, &rt.Longitude, &rt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		rt.Votes = make([]domain.RestaurantVote, 0)
		byID[rt.ID] = len(restaurants)
		restaurants = append(restaurants, rt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	voteQuery := `SELECT v.id, v.restaurant_id, v.user_id, v.created_at,
						 u.id, u.username, u.created_at
				  FROM restaurant_votes v
				  JOIN restaurants rt ON rt.id = v.restaurant_id
				  JOIN users u ON u.id = v.user_id
				  WHERE rt.event_id=$1
				  ORDER BY v.created_at ASC`

	voteRows, err := r.db.QueryWithRetry(ctx, r.strategy, voteQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list restaurant votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var v domain.RestaurantVote
		var u domain.User
		if err = voteRows.Scan(
			&v.ID, &v.RestaurantID, &v.UserID, &v.CreatedAt,
			&u.ID, &u.Username, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant vote: %w", err)
		}
		v.User = &u
		if i, ok := byID[v.RestaurantID]; ok {
			restaurants[i].Votes = append(restaurants[i].Votes, v)
		}
	}

	return restaurants, voteRows.Err()
}

func (r *EventRepository) eventTimeSlots(ctx context.Context, eventID string) ([]domain.TimeSlot, error) {
	query := `SELECT id, event_id, start_time, end_time, created_at
			  FROM time_slots
			  WHERE event_id=$1
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	byID := make(map[string]int)
	for rows.Next() {
		var ts domain.TimeSlot
		if err = rows.Scan(&ts.ID, &ts.EventID, &ts.StartTime, &ts.EndTime, &ts.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan time slot: %w", err)
		}
		ts.Votes = make([]domain.TimeSlotVote, 0)
		byID[ts.ID] = len(slots)
		slots = append(slots, ts)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	voteQuery := `SELECT v.id, v.time_slot_id, v.user_id, v.created_at,
						 u.id, u.username, u.created_at
				  FROM time_slot_votes v
				  JOIN time_slots ts ON ts.id = v.time_slot_id
				  JOIN users u ON u.id = v.user_id
				  WHERE ts.event_id=$1
				  ORDER BY v.created_at ASC`

	voteRows, err := r.db.QueryWithRetry(ctx, r.strategy, voteQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list time slot votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var v domain.TimeSlotVote
		var u domain.User
		if err = voteRows.Scan(
			&v.ID, &v.TimeSlotID, &v.UserID, &v.CreatedAt,
			&u.ID, &u.Username, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time slot vote: %w", err)
		}
		v.User = &u
		if i, ok := byID[v.TimeSlotID]; ok {
			slots[i].Votes = append(slots[i].Votes, v)
		}
	}

	return slots, voteRows.Err()
}

func (r *EventRepository) eventRSVPs(ctx context.Context, eventID string) ([]domain.RSVP, error) {
	query := `SELECT v.id, v.event_id, v.user_id, v.status, v.created_at, v.updated_at,
					 u.id, u.username, u.created_at
			  FROM rsvps v
			  JOIN users u ON u.id = v.user_id
			  WHERE v.event_id=$1
			  ORDER BY v.created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := make([]domain.RSVP, 0)
	for rows.Next() {
		var v domain.RSVP
		var u domain.User
		if err = rows.Scan(
			&v.ID, &v.EventID, &v.UserID, &v.Status, &v.CreatedAt, &v.UpdatedAt,
			&u.ID, &u.Username, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		v.User = &u
		rsvps = append(rsvps, v)
	}

	return rsvps, rows.Err()
}

func (r *EventRepository) eventComments(ctx context.Context, eventID string) ([]domain.Comment, error) {
	query := `SELECT c.id, c.event_id, c.user_id, c.content, c.created_at,
					 u.id, u.username, u.created_at
			  FROM comments c
			  JOIN users u ON u.id = c.user_id
			  WHERE c.event_id=$1
			  ORDER BY c.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		var u domain.User
		if err = rows.Scan(
			&c.ID, &c.EventID, &c.UserID, &c.Content, &c.CreatedAt,
			&u.ID, &u.Username, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.User = &u
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

// Delete removes the event graph in dependency order inside a single
// transaction, so a concurrent reader never observes a partially deleted
// aggregate.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		name  string
		query string
	}{
		{"restaurant votes", `DELETE FROM restaurant_votes WHERE restaurant_id IN (SELECT id FROM restaurants WHERE event_id=$1)`},
		{"time slot votes", `DELETE FROM time_slot_votes WHERE time_slot_id IN (SELECT id FROM time_slots WHERE event_id=$1)`},
		{"restaurants", `DELETE FROM restaurants WHERE event_id=$1`},
		{"time slots", `DELETE FROM time_slots WHERE event_id=$1`},
		{"rsvps", `DELETE FROM rsvps WHERE event_id=$1`},
		{"comments", `DELETE FROM comments WHERE event_id=$1`},
	}

	for _, step := range steps {
		if _, err = tx.ExecContext(ctx, step.query, eventID); err != nil {
			return fmt.Errorf("delete %s: %w", step.name, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id=$1`, eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var creator domain.User
	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime, &e.Location,
		&e.CreatedByID, &e.CreatedAt, &e.UpdatedAt,
		&creator.ID, &creator.Username, &creator.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.CreatedBy = &creator

	return &e, nil
}
