package handler

import (
	"net/http"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) GetWhiteboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	wb, err := h.whiteboard.GetOrCreate(user.DepartmentId, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wb)
}

func (h *Handler) UpdateWhiteboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateWhiteboardRequest
	if err := utils.Decode(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	wb, err := h.whiteboard.Replace(user.DepartmentId, user.Id, req.Patch())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.UpdateWhiteboardResponse{Message: "Whiteboard updated", Whiteboard: wb})
}
