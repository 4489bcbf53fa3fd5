package domain

import "time"

const (
	FileKindFolder = "folder"
	FileKindFile   = "file"
)

// File is a node of the department document tree: either a folder or
// an uploaded document stored in the object store. ParentId == nil
// means the department root.
type File struct {
	Id           FileId
	Name         string
	Kind         string
	FileType     string
	FileUrl      string
	PublicId     string
	Size         int64
	ParentId     *FileId
	UploadedBy   UserId
	DepartmentId DepartmentId
	CreatedAt    time.Time
}
