package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	events      ports.EventRepo
	restaurants ports.RestaurantRepo
	timeSlots   ports.TimeSlotRepo
	comments    ports.CommentRepo
	users       ports.UserRepo
	notifier    ports.EventNotifier
	admins      map[string]struct{}
	logger      logger.Logger
}

func NewEventService(
	events ports.EventRepo,
	restaurants ports.RestaurantRepo,
	timeSlots ports.TimeSlotRepo,
	comments ports.CommentRepo,
	users ports.UserRepo,
	notifier ports.EventNotifier,
	adminHandles []string,
	logger logger.Logger,
) *EventService {
	admins := make(map[string]struct{}, len(adminHandles))
	for _, h := range adminHandles {
		admins[strings.ToLower(h)] = struct{}{}
	}

	return &EventService{
		events:      events,
		restaurants: restaurants,
		timeSlots:   timeSlots,
		comments:    comments,
		users:       users,
		notifier:    notifier,
		admins:      admins,
		logger:      logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		return nil, fmt.Errorf("%w: title exceeds %d characters", domain.ErrValidation, domain.MaxTitleLen)
	}
	if input.Location != nil && utf8.RuneCountInString(*input.Location) > domain.MaxLocationLen {
		return nil, fmt.Errorf("%w: location exceeds %d characters", domain.ErrValidation, domain.MaxLocationLen)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		CreatedByID: input.CreatedByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	creator, err := s.users.GetByID(ctx, input.CreatedByID)
	if err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}
	event.CreatedBy = creator

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("created_by", creator.Username),
	)

	go s.notifier.NotifyEventCreated(context.WithoutCancel(ctx), creator, event)

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.events.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventSummary, error) {
	return s.events.List(ctx)
}

// Delete is allowed for the event's creator and for configured admin
// handles (compared case-insensitively). The repository performs the
// cascade atomically.
func (s *EventService) Delete(ctx context.Context, id, requesterID, requesterHandle string) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.CreatedByID != requesterID && !s.isAdmin(requesterHandle) {
		return domain.ErrForbidden
	}

	if err = s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("requested_by", requesterHandle),
	)

	return nil
}

func (s *EventService) isAdmin(handle string) bool {
	_, ok := s.admins[strings.ToLower(handle)]
	return ok
}

func (s *EventService) AddRestaurant(ctx context.Context, input domain.AddRestaurantInput) (*domain.Restaurant, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}

	restaurant := &domain.Restaurant{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		Name:      input.Name,
		Address:   input.Address,
		PlaceID:   input.PlaceID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.RestaurantVote{},
	}

	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	return restaurant, nil
}

// AddTimeSlot stores the proposed window as-is. Start/end ordering is not
// checked: proposing a reversed window is the proposer's problem to fix by
// proposing another one.
func (s *EventService) AddTimeSlot(ctx context.Context, eventID string, startTime, endTime time.Time) (*domain.TimeSlot, error) {
	slot := &domain.TimeSlot{
		ID:        uuid.New().String(),
		EventID:   eventID,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: time.Now().UTC(),
		Votes:     []domain.TimeSlotVote{},
	}

	if err := s.timeSlots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create time slot: %w", err)
	}

	return slot, nil
}

func (s *EventService) AddComment(ctx context.Context, eventID, userID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(content) > domain.MaxCommentLen {
		return nil, fmt.Errorf("%w: content exceeds %d characters", domain.ErrValidation, domain.MaxCommentLen)
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	comment.User = author

	return comment, nil
}
