package domain

import "time"

// TimeSlot is a candidate time window for an event. Start/end ordering is
// deliberately not enforced.
type TimeSlot struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	CreatedAt time.Time      `json:"createdAt"`
	Votes     []TimeSlotVote `json:"votes"`
}

type TimeSlotVote struct {
	ID         string    `json:"id"`
	TimeSlotID string    `json:"timeSlotId"`
	UserID     string    `json:"userId"`
	User       *User     `json:"user"`
	CreatedAt  time.Time `json:"createdAt"`
}
