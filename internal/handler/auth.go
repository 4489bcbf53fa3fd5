package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	session, err := h.auth.Register(req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session.Profile())
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	session, err := h.auth.Login(domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Profile())
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	session, err := h.auth.Profile(user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Profile())
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateProfileRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	session, err := h.auth.UpdateProfile(user.Id, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session.Profile())
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	if err := h.auth.DeleteAccount(user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Account deleted"})
}

// Profile pictures are rendered inline, so only raster image formats
// are accepted.
var profileImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// UploadProfileImage stores a multipart image and returns its url and
// public id; the client then sends both in a profile update.
func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.cfg.Public.MaxUploadSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("File too large or malformed form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("Missing image file"))
		return
	}
	defer file.Close()

	if !profileImageExts[strings.ToLower(filepath.Ext(header.Filename))] {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest("Only JPG and PNG images are allowed"))
		return
	}

	result, err := h.store.Upload(file, header.Filename, utils.GeneratePublicId(h.cfg.Private.Cloudinary.Folder), "image")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.UploadImageResponse{ImageUrl: result.SecureUrl, PublicId: result.PublicId})
}
