package domain

import "time"

// Provider is a reading physician assignable to whiteboard slots.
// Providers are directory entries, not accounts; they never log in.
type Provider struct {
	Id           ProviderId
	Name         string
	ProfileColor *string
	Email        string
	PhoneNumber  string
	PagerNumber  string
	OfficeNumber string
	DepartmentId DepartmentId
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProviderCreationData struct {
	Name         string
	ProfileColor *string
	Email        string
	PhoneNumber  string
	PagerNumber  string
	OfficeNumber string
	DepartmentId DepartmentId
}

type ProviderUpdateData struct {
	Name         *string
	ProfileColor *string
	Email        *string
	PhoneNumber  *string
	PagerNumber  *string
	OfficeNumber *string
}
