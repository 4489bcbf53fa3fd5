package domain

import "time"

const (
	StationTypeEmu  = "EMU Station"
	StationTypeCart = "EEG Cart"

	StationLocationInpatient  = "Inpatient"
	StationLocationOutpatient = "Outpatient"
	StationLocationBellevue   = "Bellevue"

	StationStatusActive   = "Active"
	StationStatusInactive = "Inactive"
)

// ComStation is a tracked EEG acquisition machine. Inactive stations
// carry an issue description and optionally an IT ticket number.
type ComStation struct {
	Id               StationId
	Name             string
	Type             string
	Location         string
	Status           string
	IssueDescription string
	HasTicket        bool
	TicketNumber     string
	DepartmentId     DepartmentId
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StationFilter narrows a department listing; empty fields match all.
type StationFilter struct {
	Type     string
	Location string
	Status   string
}
