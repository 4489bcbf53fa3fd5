package handler

import (
	"net/http"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	users, err := h.users.List(user.DepartmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp, err := h.users.Get(user.DepartmentId, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.users.Delete(user.DepartmentId, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "User removed"})
}
