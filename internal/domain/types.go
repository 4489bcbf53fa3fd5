package domain

import "github.com/lib/pq"

type (
	UserId       = int64
	ProviderId   = int64
	DepartmentId = int64
	WhiteboardId = int64
	StationId    = int64
	FileId       = int64
	Email        = string
)

// StringList scans postgres TEXT[] columns directly.
type StringList = pq.StringArray
