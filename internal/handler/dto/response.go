package dto

import (
	"time"

	"github.com/thisistony/aucklandeats-meetup/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	RedditUsername string `json:"redditUsername"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type MeResponse struct {
	User *UserResponse `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type EventResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Date        string        `json:"date"`
	StartTime   *string       `json:"startTime"`
	EndTime     *string       `json:"endTime"`
	Location    *string       `json:"location"`
	CreatedByID string        `json:"createdById"`
	CreatedBy   *UserResponse `json:"createdBy"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type EventCountResponse struct {
	RSVPs       int `json:"rsvps"`
	Restaurants int `json:"restaurants"`
	Comments    int `json:"comments"`
}

type EventSummaryResponse struct {
	EventResponse
	Count EventCountResponse `json:"_count"`
}

type EventListResponse struct {
	Events []EventSummaryResponse `json:"events"`
}

type EventDetailsResponse struct {
	EventResponse
	Restaurants []RestaurantResponse `json:"restaurants"`
	TimeSlots   []TimeSlotResponse   `json:"timeSlots"`
	RSVPs       []RSVPResponse       `json:"rsvps"`
	Comments    []CommentResponse    `json:"comments"`
}

type RestaurantResponse struct {
	ID        string                   `json:"id"`
	EventID   string                   `json:"eventId"`
	Name      string                   `json:"name"`
	Address   string                   `json:"address"`
	PlaceID   *string                  `json:"placeId"`
	Latitude  *float64                 `json:"latitude"`
	Longitude *float64                 `json:"longitude"`
	CreatedAt string                   `json:"createdAt"`
	Votes     []RestaurantVoteResponse `json:"votes"`
}

type RestaurantVoteResponse struct {
	ID           string        `json:"id"`
	RestaurantID string        `json:"restaurantId"`
	UserID       string        `json:"userId"`
	User         *UserResponse `json:"user"`
	CreatedAt    string        `json:"createdAt"`
}

type TimeSlotResponse struct {
	ID        string                 `json:"id"`
	EventID   string                 `json:"eventId"`
	StartTime string                 `json:"startTime"`
	EndTime   string                 `json:"endTime"`
	CreatedAt string                 `json:"createdAt"`
	Votes     []TimeSlotVoteResponse `json:"votes"`
}

type TimeSlotVoteResponse struct {
	ID         string        `json:"id"`
	TimeSlotID string        `json:"timeSlotId"`
	UserID     string        `json:"userId"`
	User       *UserResponse `json:"user"`
	CreatedAt  string        `json:"createdAt"`
}

type RSVPResponse struct {
	ID        string        `json:"id"`
	EventID   string        `json:"eventId"`
	UserID    string        `json:"userId"`
	Status    string        `json:"status"`
	User      *UserResponse `json:"user"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

type CommentResponse struct {
	ID        string        `json:"id"`
	EventID   string        `json:"eventId"`
	UserID    string        `json:"userId"`
	Content   string        `json:"content"`
	User      *UserResponse `json:"user"`
	CreatedAt string        `json:"createdAt"`
}

func ToUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		RedditUsername: u.Username,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(time.RFC3339),
		StartTime:   formatOptional(e.StartTime),
		EndTime:     formatOptional(e.EndTime),
		Location:    e.Location,
		CreatedByID: e.CreatedByID,
		CreatedBy:   ToUserResponse(e.CreatedBy),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventSummaryResponse(s *domain.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		EventResponse: ToEventResponse(&s.Event),
		Count: EventCountResponse{
			RSVPs:       s.Counts.RSVPs,
			Restaurants: s.Counts.Restaurants,
			Comments:    s.Counts.Comments,
		},
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		EventResponse: ToEventResponse(&d.Event),
		Restaurants:   make([]RestaurantResponse, 0, len(d.Restaurants)),
		TimeSlots:     make([]TimeSlotResponse, 0, len(d.TimeSlots)),
		RSVPs:         make([]RSVPResponse, 0, len(d.RSVPs)),
		Comments:      make([]CommentResponse, 0, len(d.Comments)),
	}

	for i := range d.Restaurants {
		resp.Restaurants = append(resp.Restaurants, ToRestaurantResponse(&d.Restaurants[i]))
	}
	for i := range d.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, ToTimeSlotResponse(&d.TimeSlots[i]))
	}
	for i := range d.RSVPs {
		resp.RSVPs = append(resp.RSVPs, ToRSVPResponse(&d.RSVPs[i]))
	}
	for i := range d.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(&d.Comments[i]))
	}

	return resp
}

func ToRestaurantResponse(r *domain.Restaurant) RestaurantResponse {
	votes := make([]RestaurantVoteResponse, 0, len(r.Votes))
	for i := range r.Votes {
		votes = append(votes, ToRestaurantVoteResponse(&r.Votes[i]))
	}

	return RestaurantResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		Name:      r.Name,
		Address:   r.Address,
		PlaceID:   r.PlaceID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		Votes:     votes,
	}
}

func ToRestaurantVoteResponse(v *domain.RestaurantVote) RestaurantVoteResponse {
	return RestaurantVoteResponse{
		ID:           v.ID,
		RestaurantID: v.RestaurantID,
		UserID:       v.UserID,
		User:         ToUserResponse(v.User),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
	}
}

func ToTimeSlotResponse(ts *domain.TimeSlot) TimeSlotResponse {
	votes := make([]TimeSlotVoteResponse, 0, len(ts.Votes))
	for i := range ts.Votes {
		votes = append(votes, ToTimeSlotVoteResponse(&ts.Votes[i]))
	}

	return TimeSlotResponse{
		ID:        ts.ID,
		EventID:   ts.EventID,
		StartTime: ts.StartTime.Format(time.RFC3339),
		EndTime:   ts.EndTime.Format(time.RFC3339),
		CreatedAt: ts.CreatedAt.Format(time.RFC3339),
		Votes:     votes,
	}
}

func ToTimeSlotVoteResponse(v *domain.TimeSlotVote) TimeSlotVoteResponse {
	return TimeSlotVoteResponse{
		ID:         v.ID,
		TimeSlotID: v.TimeSlotID,
		UserID:     v.UserID,
		User:       ToUserResponse(v.User),
		CreatedAt:  v.CreatedAt.Format(time.RFC3339),
	}
}

func ToRSVPResponse(r *domain.RSVP) RSVPResponse {
	return RSVPResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		User:      ToUserResponse(r.User),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		UserID:    c.UserID,
		Content:   c.Content,
		User:      ToUserResponse(c.User),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
