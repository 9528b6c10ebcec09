package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thisistony/aucklandeats-meetup/internal/directory"
	"github.com/thisistony/aucklandeats-meetup/internal/domain"
	"github.com/thisistony/aucklandeats-meetup/internal/handler/dto"
	"github.com/thisistony/aucklandeats-meetup/internal/middleware"
	"github.com/thisistony/aucklandeats-meetup/internal/session"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	LoginOrProvision(ctx context.Context, username string) (*domain.User, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.EventSummary, error)
	Delete(ctx context.Context, id, requesterID, requesterHandle string) error
	AddRestaurant(ctx context.Context, input domain.AddRestaurantInput) (*domain.Restaurant, error)
	AddTimeSlot(ctx context.Context, eventID string, startTime, endTime time.Time) (*domain.TimeSlot, error)
	AddComment(ctx context.Context, eventID, userID, content string) (*domain.Comment, error)
}

type VoteSvc interface {
	VoteRestaurant(ctx context.Context, restaurantID, userID string) (*domain.RestaurantVote, error)
	UnvoteRestaurant(ctx context.Context, restaurantID, userID string) error
	VoteTimeSlot(ctx context.Context, timeSlotID, userID string) (*domain.TimeSlotVote, error)
	UnvoteTimeSlot(ctx context.Context, timeSlotID, userID string) error
}

type RSVPSvc interface {
	Set(ctx context.Context, eventID, userID string, status domain.RSVPStatus) (*domain.RSVP, error)
}

type DirectoryClient interface {
	CheckUsername(ctx context.Context, username string) directory.Result
}

type Handler struct {
	userService  UserSvc
	eventService EventSvc
	voteService  VoteSvc
	rsvpService  RSVPSvc
	directory    DirectoryClient
	sessions     *session.Manager
}

func NewHandler(
	userService UserSvc,
	eventService EventSvc,
	voteService VoteSvc,
	rsvpService RSVPSvc,
	directory DirectoryClient,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		userService:  userService,
		eventService: eventService,
		voteService:  voteService,
		rsvpService:  rsvpService,
		directory:    directory,
		sessions:     sessions,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid username format"})
		return
	}

	user, err := h.userService.LoginOrProvision(c.Request.Context(), req.RedditUsername)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid username format"})
			return
		}
		h.handleError(c, err)
		return
	}

	if err = h.sessions.Issue(c, session.Identity{UserID: user.ID, Username: user.Username}); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    *dto.ToUserResponse(user),
	})
}

func (h *Handler) Logout(c *ginext.Context) {
	h.sessions.Clear(c)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) Me(c *ginext.Context) {
	ident, ok := h.sessions.Current(c)
	if !ok {
		c.JSON(http.StatusOK, dto.MeResponse{User: nil})
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{User: &dto.UserResponse{
		ID:             ident.UserID,
		RedditUsername: ident.Username,
	}})
}

// CheckUsername proxies the advisory reddit existence probe. It always
// answers 200 (except for a missing parameter): failures degrade to a
// reason code inside the payload.
func (h *Handler) CheckUsername(c *ginext.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username is required"})
		return
	}

	c.JSON(http.StatusOK, h.directory.CheckUsername(c.Request.Context(), username))
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	summaries, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	events := make([]dto.EventSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		events = append(events, dto.ToEventSummaryResponse(s))
	}

	c.JSON(http.StatusOK, dto.EventListResponse{Events: events})
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid event data"})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date, expected RFC3339"})
		return
	}

	startTime, err := parseOptionalTime(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid startTime, expected RFC3339"})
		return
	}
	endTime, err := parseOptionalTime(req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid endTime, expected RFC3339"})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    req.Location,
		CreatedByID: ident.UserID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"event": dto.ToEventResponse(event)})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"event": dto.ToEventDetailsResponse(details)})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, ident.UserID, ident.Username); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Event sub-resources

func (h *Handler) AddRestaurant(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	var req dto.AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid restaurant data"})
		return
	}

	restaurant, err := h.eventService.AddRestaurant(c.Request.Context(), domain.AddRestaurantInput{
		EventID:   eventID,
		Name:      req.Name,
		Address:   req.Address,
		PlaceID:   req.PlaceID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"restaurant": dto.ToRestaurantResponse(restaurant)})
}

func (h *Handler) AddTimeSlot(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	var req dto.AddTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid time slot data"})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid startTime, expected RFC3339"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid endTime, expected RFC3339"})
		return
	}

	slot, err := h.eventService.AddTimeSlot(c.Request.Context(), eventID, startTime, endTime)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"timeSlot": dto.ToTimeSlotResponse(slot)})
}

func (h *Handler) AddComment(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid comment data"})
		return
	}

	comment, err := h.eventService.AddComment(c.Request.Context(), eventID, ident.UserID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"comment": dto.ToCommentResponse(comment)})
}

func (h *Handler) SetRSVP(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Event not found"})
		return
	}

	var req dto.SetRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid RSVP status"})
		return
	}

	rsvp, err := h.rsvpService.Set(c.Request.Context(), eventID, ident.UserID, domain.RSVPStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid RSVP status"})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"rsvp": dto.ToRSVPResponse(rsvp)})
}

// Votes

func (h *Handler) VoteRestaurant(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Restaurant not found"})
		return
	}

	vote, err := h.voteService.VoteRestaurant(c.Request.Context(), id, ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"vote": dto.ToRestaurantVoteResponse(vote)})
}

func (h *Handler) UnvoteRestaurant(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Vote not found"})
		return
	}

	if err := h.voteService.UnvoteRestaurant(c.Request.Context(), id, ident.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) VoteTimeSlot(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Time slot not found"})
		return
	}

	vote, err := h.voteService.VoteTimeSlot(c.Request.Context(), id, ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"vote": dto.ToTimeSlotVoteResponse(vote)})
}

func (h *Handler) UnvoteTimeSlot(c *ginext.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Vote not found"})
		return
	}

	if err := h.voteService.UnvoteTimeSlot(c.Request.Context(), id, ident.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrTimeSlotNotFound),
		errors.Is(err, domain.ErrVoteNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
