package domain

import "time"

// Restaurant is a candidate venue proposed for an event. Coordinates and
// place id come from the client's place lookup and are stored verbatim.
type Restaurant struct {
	ID        string           `json:"id"`
	EventID   string           `json:"eventId"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	PlaceID   *string          `json:"placeId"`
	Latitude  *float64         `json:"latitude"`
	Longitude *float64         `json:"longitude"`
	CreatedAt time.Time        `json:"createdAt"`
	Votes     []RestaurantVote `json:"votes"`
}

// RestaurantVote carries no payload: its existence means "this user
// supports this restaurant". Unique per (restaurant, user).
type RestaurantVote struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	User         *User     `json:"user"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AddRestaurantInput struct {
	EventID   string
	Name      string
	Address   string
	PlaceID   *string
	Latitude  *float64
	Longitude *float64
}
