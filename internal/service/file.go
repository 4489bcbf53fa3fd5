package service

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
	"github.com/techflow-dev/techflow/internal/storage/cloudinary"
	"github.com/techflow-dev/techflow/internal/utils"
)

// ObjectStore is the part of the Cloudinary client the services need.
type ObjectStore interface {
	Upload(data io.Reader, filename, publicId, resourceType string) (cloudinary.UploadResult, error)
	Destroy(publicId, resourceType string) error
}

type FileService interface {
	List(departmentId domain.DepartmentId, parentId *domain.FileId) (api.FileListResponse, error)
	CreateFolder(departmentId domain.DepartmentId, userId domain.UserId, req api.CreateFolderRequest) (api.FileResponse, error)
	Upload(departmentId domain.DepartmentId, userId domain.UserId, data io.Reader, filename string, parentId *domain.FileId) (api.FileResponse, error)
	DownloadUrl(departmentId domain.DepartmentId, id domain.FileId) (string, error)
	Delete(departmentId domain.DepartmentId, id domain.FileId) error
}

type FileStorage interface {
	CreateFile(file domain.File) (domain.File, error)
	FileById(id domain.FileId) (domain.File, error)
	FilesByParent(departmentId domain.DepartmentId, parentId *domain.FileId) ([]domain.File, error)
	DeleteFile(id domain.FileId) error
}

type File struct {
	storage   FileStorage
	store     ObjectStore
	directory Directory
	folder    string
}

func NewFile(storage FileStorage, store ObjectStore, directory Directory, folder string) *File {
	return &File{storage: storage, store: store, directory: directory, folder: folder}
}

// fileType and object-store resource type by extension. Extensions
// outside the map are rejected before anything is uploaded.
var fileTypes = map[string]struct{ fileType, resourceType string }{
	".jpg":  {"image", "image"},
	".jpeg": {"image", "image"},
	".png":  {"image", "image"},
	".gif":  {"image", "image"},
	".pdf":  {"pdf", "raw"},
	".doc":  {"document", "raw"},
	".docx": {"document", "raw"},
	".xls":  {"spreadsheet", "raw"},
	".xlsx": {"spreadsheet", "raw"},
	".txt":  {"text", "raw"},
	".csv":  {"text", "raw"},
}

func (s *File) List(departmentId domain.DepartmentId, parentId *domain.FileId) (api.FileListResponse, error) {
	if parentId != nil {
		if _, err := s.departmentFolder(departmentId, *parentId); err != nil {
			return api.FileListResponse{}, err
		}
	}
	files, err := s.storage.FilesByParent(departmentId, parentId)
	if err != nil {
		return api.FileListResponse{}, err
	}
	users, err := s.directory.Users(departmentId)
	if err != nil {
		return api.FileListResponse{}, err
	}

	resp := api.FileListResponse{Files: make([]api.FileResponse, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, fileResponse(f, users))
	}
	return resp, nil
}

func (s *File) CreateFolder(departmentId domain.DepartmentId, userId domain.UserId, req api.CreateFolderRequest) (api.FileResponse, error) {
	if req.ParentFolder != nil {
		if _, err := s.departmentFolder(departmentId, *req.ParentFolder); err != nil {
			return api.FileResponse{}, err
		}
	}
	f, err := s.storage.CreateFile(domain.File{
		Name:         req.Name,
		Kind:         domain.FileKindFolder,
		ParentId:     req.ParentFolder,
		UploadedBy:   userId,
		DepartmentId: departmentId,
	})
	if err != nil {
		return api.FileResponse{}, err
	}
	return s.resolved(f)
}

func (s *File) Upload(departmentId domain.DepartmentId, userId domain.UserId, data io.Reader, filename string, parentId *domain.FileId) (api.FileResponse, error) {
	if parentId != nil {
		if _, err := s.departmentFolder(departmentId, *parentId); err != nil {
			return api.FileResponse{}, err
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	kind, ok := fileTypes[ext]
	if !ok {
		return api.FileResponse{}, errors.BadRequest("Unsupported file type")
	}

	uploaded, err := s.store.Upload(data, filename, utils.GeneratePublicId(s.folder), kind.resourceType)
	if err != nil {
		return api.FileResponse{}, err
	}

	f, err := s.storage.CreateFile(domain.File{
		Name:         filename,
		Kind:         domain.FileKindFile,
		FileType:     kind.fileType,
		FileUrl:      uploaded.SecureUrl,
		PublicId:     uploaded.PublicId,
		Size:         uploaded.Bytes,
		ParentId:     parentId,
		UploadedBy:   userId,
		DepartmentId: departmentId,
	})
	if err != nil {
		// The row failed after the object was stored; remove the
		// orphan so the store doesn't accumulate unreachable objects.
		if destroyErr := s.store.Destroy(uploaded.PublicId, kind.resourceType); destroyErr != nil {
			logger.Log.Warn("failed to clean up orphaned upload", "publicId", uploaded.PublicId, "error", destroyErr)
		}
		return api.FileResponse{}, err
	}
	return s.resolved(f)
}

func (s *File) DownloadUrl(departmentId domain.DepartmentId, id domain.FileId) (string, error) {
	f, err := s.departmentFile(departmentId, id)
	if err != nil {
		return "", err
	}
	if f.Kind != domain.FileKindFile {
		return "", errors.BadRequest("Folders cannot be downloaded")
	}
	return f.FileUrl, nil
}

// Delete removes a file, or a folder with everything under it.
// Object-store cleanup is best-effort: a failed Destroy is logged and
// the rows are removed anyway so the tree never shows phantom entries.
func (s *File) Delete(departmentId domain.DepartmentId, id domain.FileId) error {
	f, err := s.departmentFile(departmentId, id)
	if err != nil {
		return err
	}
	return s.deleteTree(f)
}

func (s *File) deleteTree(f domain.File) error {
	if f.Kind == domain.FileKindFolder {
		children, err := s.storage.FilesByParent(f.DepartmentId, &f.Id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := s.deleteTree(child); err != nil {
				return err
			}
		}
	} else if f.PublicId != "" {
		resourceType := "raw"
		if f.FileType == "image" {
			resourceType = "image"
		}
		if err := s.store.Destroy(f.PublicId, resourceType); err != nil {
			logger.Log.Warn("failed to remove stored object", "publicId", f.PublicId, "error", err)
		}
	}
	return s.storage.DeleteFile(f.Id)
}

func (s *File) departmentFile(departmentId domain.DepartmentId, id domain.FileId) (domain.File, error) {
	f, err := s.storage.FileById(id)
	if err != nil {
		return domain.File{}, err
	}
	if f.DepartmentId != departmentId {
		return domain.File{}, errors.NotFound("File not found")
	}
	return f, nil
}

func (s *File) departmentFolder(departmentId domain.DepartmentId, id domain.FileId) (domain.File, error) {
	f, err := s.departmentFile(departmentId, id)
	if err != nil {
		return domain.File{}, err
	}
	if f.Kind != domain.FileKindFolder {
		return domain.File{}, errors.BadRequest("Parent is not a folder")
	}
	return f, nil
}

func (s *File) resolved(f domain.File) (api.FileResponse, error) {
	users, err := s.directory.Users(f.DepartmentId)
	if err != nil {
		return api.FileResponse{}, err
	}
	return fileResponse(f, users), nil
}

func fileResponse(f domain.File, users map[domain.UserId]domain.User) api.FileResponse {
	resp := api.FileResponse{
		Id:           f.Id,
		Name:         f.Name,
		Kind:         f.Kind,
		FileType:     f.FileType,
		FileUrl:      f.FileUrl,
		Size:         f.Size,
		ParentFolder: f.ParentId,
		CreatedAt:    f.CreatedAt,
	}
	if u, ok := users[f.UploadedBy]; ok {
		card := userCard(u)
		resp.UploadedBy = &card
	}
	return resp
}
