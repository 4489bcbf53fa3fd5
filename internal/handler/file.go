package handler

import (
	"net/http"
	"strconv"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

// parentParam parses the optional ?parent= query; absent means the
// department root.
func parentParam(r *http.Request) (*domain.FileId, error) {
	raw := r.URL.Query().Get("parent")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.BadRequest("Invalid parent folder id")
	}
	return &id, nil
}

func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	parentId, err := parentParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	files, err := h.files.List(user.DepartmentId, parentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateFolderRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	folder, err := h.files.CreateFolder(user.DepartmentId, user.Id, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.FileMutationResponse{Message: "Folder created", File: folder})
}

func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	maxSize := h.cfg.Public.MaxUploadSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("File too large or malformed form"))
		return
	}

	var parentId *domain.FileId
	if raw := r.FormValue("parentFolder"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, errors.BadRequest("Invalid parent folder id"))
			return
		}
		parentId = &id
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("Missing file"))
		return
	}
	defer file.Close()

	uploaded, err := h.files.Upload(user.DepartmentId, user.Id, file, header.Filename, parentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.FileMutationResponse{Message: "File uploaded", File: uploaded})
}

func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	url, err := h.files.DownloadUrl(user.DepartmentId, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.files.Delete(user.DepartmentId, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "File removed"})
}
