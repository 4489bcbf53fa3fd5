package domain

import "time"

// StorageRooms are the fixed supply locations a department tracks.
var StorageRooms = []string{"Department", "Outpatient Rooms", "2nd Floor Storage", "6th Floor Storage", "8th Floor Storage"}

func ValidStorageRoom(room string) bool {
	for _, r := range StorageRooms {
		if r == room {
			return true
		}
	}
	return false
}

// Supply is one storage room's running item list.
type Supply struct {
	Id            int64
	DepartmentId  DepartmentId
	StorageRoom   string
	Items         []string
	LastUpdatedBy UserId
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
