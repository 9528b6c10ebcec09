package domain

import "time"

type RSVPStatus string

const (
	RSVPStatusGoing    RSVPStatus = "going"
	RSVPStatusMaybe    RSVPStatus = "maybe"
	RSVPStatusNotGoing RSVPStatus = "not_going"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusGoing, RSVPStatusMaybe, RSVPStatusNotGoing:
		return true
	}
	return false
}

// RSVP is unique per (event, user); re-RSVPing overwrites the status.
type RSVP struct {
	ID        string     `json:"id"`
	EventID   string     `json:"eventId"`
	UserID    string     `json:"userId"`
	Status    RSVPStatus `json:"status"`
	User      *User      `json:"user"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
