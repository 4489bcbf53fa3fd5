package api

import "time"

type CreateStationRequest struct {
	Name             string `json:"comStation" validate:"required"`
	Type             string `json:"comStationType" validate:"required,oneof='EMU Station' 'EEG Cart'"`
	Location         string `json:"comStationLocation" validate:"required,oneof=Inpatient Outpatient Bellevue"`
	Status           string `json:"comStationStatus,omitempty" validate:"omitempty,oneof=Active Inactive"`
	IssueDescription string `json:"issueDescription,omitempty"`
	HasTicket        bool   `json:"hasTicket,omitempty"`
	TicketNumber     string `json:"ticketNumber,omitempty"`
}

type UpdateStationRequest struct {
	Type             *string `json:"comStationType,omitempty" validate:"omitempty,oneof='EMU Station' 'EEG Cart'"`
	Location         *string `json:"comStationLocation,omitempty" validate:"omitempty,oneof=Inpatient Outpatient Bellevue"`
	Status           *string `json:"comStationStatus,omitempty" validate:"omitempty,oneof=Active Inactive"`
	IssueDescription *string `json:"issueDescription,omitempty"`
	HasTicket        *bool   `json:"hasTicket,omitempty"`
	TicketNumber     *string `json:"ticketNumber,omitempty"`
}

type StationResponse struct {
	Id               int64     `json:"id"`
	Name             string    `json:"comStation"`
	Type             string    `json:"comStationType"`
	Location         string    `json:"comStationLocation"`
	Status           string    `json:"comStationStatus"`
	IssueDescription string    `json:"issueDescription"`
	HasTicket        bool      `json:"hasTicket"`
	TicketNumber     string    `json:"ticketNumber"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type StationMutationResponse struct {
	Message string          `json:"message"`
	Station StationResponse `json:"comStation"`
}
