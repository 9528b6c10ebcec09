package domain

import "time"

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Date        time.Time  `json:"date"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Location    *string    `json:"location"`
	CreatedByID string     `json:"createdById"`
	CreatedBy   *User      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// EventCounts is the light projection used by the calendar list: child row
// counts instead of full child payloads.
type EventCounts struct {
	RSVPs       int `json:"rsvps"`
	Restaurants int `json:"restaurants"`
	Comments    int `json:"comments"`
}

type EventSummary struct {
	Event  Event
	Counts EventCounts
}

// EventDetails is the full aggregate: the event plus every owned child
// collection with voter/author identities attached.
type EventDetails struct {
	Event       Event
	Restaurants []Restaurant
	TimeSlots   []TimeSlot
	RSVPs       []RSVP
	Comments    []Comment
}

type CreateEventInput struct {
	Title       string
	Description *string
	Date        time.Time
	StartTime   *time.Time
	EndTime     *time.Time
	Location    *string
	CreatedByID string
}

const (
	MaxTitleLen    = 200
	MaxLocationLen = 300
)
