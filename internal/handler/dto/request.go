package dto

type LoginRequest struct {
	RedditUsername string `json:"redditUsername" binding:"required"`
}

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Location    *string `json:"location"`
}

type AddRestaurantRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	PlaceID   *string  `json:"placeId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type AddTimeSlotRequest struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type SetRSVPRequest struct {
	Status string `json:"status" binding:"required"`
}
