package domain

import "time"

// User is provisioned on first login for an unseen reddit handle and is
// never deleted by any flow in scope.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"redditUsername"`
	CreatedAt time.Time `json:"createdAt"`
}
