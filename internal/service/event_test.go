package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type eventServiceMocks struct {
	events      *mocks.MockEventRepo
	restaurants *mocks.MockRestaurantRepo
	timeSlots   *mocks.MockTimeSlotRepo
	comments    *mocks.MockCommentRepo
	users       *mocks.MockUserRepo
	notifier    *mocks.MockEventNotifier
}

func newEventService(t *testing.T, adminHandles ...string) (*EventService, *eventServiceMocks) {
	t.Helper()
	m := &eventServiceMocks{
		events:      mocks.NewMockEventRepo(t),
		restaurants: mocks.NewMockRestaurantRepo(t),
		timeSlots:   mocks.NewMockTimeSlotRepo(t),
		comments:    mocks.NewMockCommentRepo(t),
		users:       mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockEventNotifier(t),
	}
	svc := NewEventService(
		m.events, m.restaurants, m.timeSlots, m.comments, m.users,
		m.notifier, adminHandles, newTestLogger(t),
	)
	return svc, m
}

func TestEventService_Create_Success(t *testing.T) {
	svc, m := newEventService(t)

	creator := &domain.User{ID: "u1", Username: "kiwi_foodie"}

	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(creator, nil)
	m.notifier.EXPECT().NotifyEventCreated(mock.Anything, creator, mock.Anything).Return()

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "  Dumpling crawl  ",
		Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CreatedByID: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dumpling crawl", event.Title)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, creator, event.CreatedBy)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Create_EmptyTitle(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "   ",
		Date:        time.Now(),
		CreatedByID: "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MultibyteTitleWithinLimit(t *testing.T) {
	svc, m := newEventService(t)

	creator := &domain.User{ID: "u1", Username: "kiwi_foodie"}

	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(creator, nil)
	m.notifier.EXPECT().NotifyEventCreated(mock.Anything, creator, mock.Anything).Return()

	// 150 characters but 450 bytes: limits count characters, not bytes.
	title := strings.Repeat("饺", 150)
	location := strings.Repeat("馆", 250)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       title,
		Date:        time.Now(),
		Location:    &location,
		CreatedByID: "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, title, event.Title)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Create_TitleTooLong(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       strings.Repeat("x", domain.MaxTitleLen+1),
		Date:        time.Now(),
		CreatedByID: "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_LocationTooLong(t *testing.T) {
	svc, _ := newEventService(t)

	location := strings.Repeat("x", domain.MaxLocationLen+1)
	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Dumpling crawl",
		Date:        time.Now(),
		Location:    &location,
		CreatedByID: "u1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_RepoError(t *testing.T) {
	svc, m := newEventService(t)

	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Dumpling crawl",
		Date:        time.Now(),
		CreatedByID: "missing",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_Delete_ByOwner(t *testing.T) {
	svc, m := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)
	m.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	err := svc.Delete(context.Background(), "e1", "u1", "kiwi_foodie")

	require.NoError(t, err)
}

func TestEventService_Delete_ByAdmin(t *testing.T) {
	svc, m := newEventService(t, "ancient_lettuce6821")

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)
	m.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	err := svc.Delete(context.Background(), "e1", "u2", "Ancient_Lettuce6821")

	require.NoError(t, err)
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	svc, m := newEventService(t, "ancient_lettuce6821")

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", CreatedByID: "u1"}, nil)

	err := svc.Delete(context.Background(), "e1", "u2", "someone_else")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Delete_EventNotFound(t *testing.T) {
	svc, m := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "missing", "u1", "kiwi_foodie")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_AddRestaurant_Success(t *testing.T) {
	svc, m := newEventService(t)

	m.restaurants.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	restaurant, err := svc.AddRestaurant(context.Background(), domain.AddRestaurantInput{
		EventID: "e1",
		Name:    "Eden Noodles",
		Address: "105 Dominion Rd",
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", restaurant.EventID)
	assert.NotEmpty(t, restaurant.ID)
	assert.NotNil(t, restaurant.Votes)
}

func TestEventService_AddRestaurant_MissingName(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.AddRestaurant(context.Background(), domain.AddRestaurantInput{
		EventID: "e1",
		Name:    "  ",
		Address: "105 Dominion Rd",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_AddRestaurant_MissingAddress(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.AddRestaurant(context.Background(), domain.AddRestaurantInput{
		EventID: "e1",
		Name:    "Eden Noodles",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_AddTimeSlot_Success(t *testing.T) {
	svc, m := newEventService(t)

	m.timeSlots.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	slot, err := svc.AddTimeSlot(context.Background(), "e1", start, end)

	require.NoError(t, err)
	assert.Equal(t, start, slot.StartTime)
	assert.Equal(t, end, slot.EndTime)
}

func TestEventService_AddTimeSlot_AcceptsReversedWindow(t *testing.T) {
	svc, m := newEventService(t)

	m.timeSlots.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	start := time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC)
	end := start.Add(-2 * time.Hour)

	_, err := svc.AddTimeSlot(context.Background(), "e1", start, end)

	require.NoError(t, err)
}

func TestEventService_AddComment_Success(t *testing.T) {
	svc, m := newEventService(t)

	author := &domain.User{ID: "u1", Username: "kiwi_foodie"}

	m.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(author, nil)

	comment, err := svc.AddComment(context.Background(), "e1", "u1", "keen!")

	require.NoError(t, err)
	assert.Equal(t, "keen!", comment.Content)
	assert.Equal(t, author, comment.User)
}

func TestEventService_AddComment_Empty(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.AddComment(context.Background(), "e1", "u1", "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_AddComment_MultibyteWithinLimit(t *testing.T) {
	svc, m := newEventService(t)

	author := &domain.User{ID: "u1", Username: "kiwi_foodie"}

	m.comments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(author, nil)

	content := strings.Repeat("饺", 800)

	comment, err := svc.AddComment(context.Background(), "e1", "u1", content)

	require.NoError(t, err)
	assert.Equal(t, content, comment.Content)
}

func TestEventService_AddComment_TooLong(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.AddComment(context.Background(), "e1", "u1", strings.Repeat("x", domain.MaxCommentLen+1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
