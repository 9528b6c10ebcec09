package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrTimeSlotNotFound   = errors.New("time slot not found")
	ErrVoteNotFound       = errors.New("vote not found")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrForbidden     = errors.New("forbidden")
)

var (
	ErrValidation = errors.New("validation error")
)
