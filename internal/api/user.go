package api

import "time"

// UserResponse is the roster view of a team member (no credentials).
type UserResponse struct {
	Id              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	ProfileImageUrl *string   `json:"profileImageUrl"`
	ProfileColor    *string   `json:"profileColor"`
	PhoneNumber     string    `json:"phoneNumber"`
	PagerNumber     string    `json:"pagerNumber"`
	CreatedAt       time.Time `json:"createdAt"`
}
