package api

import "time"

type CreateProviderRequest struct {
	Name         string  `json:"name" validate:"required"`
	ProfileColor *string `json:"profileColor,omitempty"`
	Email        string  `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber  string  `json:"phoneNumber,omitempty"`
	PagerNumber  string  `json:"pagerNumber,omitempty"`
	OfficeNumber string  `json:"officeNumber,omitempty"`
}

type UpdateProviderRequest struct {
	Name         *string `json:"name,omitempty"`
	ProfileColor *string `json:"profileColor,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	PagerNumber  *string `json:"pagerNumber,omitempty"`
	OfficeNumber *string `json:"officeNumber,omitempty"`
}

type ProviderResponse struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	ProfileColor *string   `json:"profileColor"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PagerNumber  string    `json:"pagerNumber"`
	OfficeNumber string    `json:"officeNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProviderMutationResponse struct {
	Message  string           `json:"message"`
	Provider ProviderResponse `json:"provider"`
}
