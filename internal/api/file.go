package api

import "time"

type CreateFolderRequest struct {
	Name         string `json:"name" validate:"required"`
	ParentFolder *int64 `json:"parentFolder,omitempty"`
}

type FileResponse struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Kind         string    `json:"type"`
	FileType     string    `json:"fileType,omitempty"`
	FileUrl      string    `json:"fileUrl,omitempty"`
	Size         int64     `json:"size"`
	ParentFolder *int64    `json:"parentFolder"`
	UploadedBy   *UserCard `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

type FileMutationResponse struct {
	Message string       `json:"message"`
	File    FileResponse `json:"file"`
}

type FileListResponse struct {
	Files []FileResponse `json:"files"`
}
