package domain

import "time"

// Comment is append-only: there is no edit or delete flow.
type Comment struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

const MaxCommentLen = 1000
