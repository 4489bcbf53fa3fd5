package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	supplies, err := h.supplies.List(user.DepartmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, supplies)
}

func (h *Handler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	storageRoom := mux.Vars(r)["storageRoom"]

	var req api.UpdateSupplyRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	supply, err := h.supplies.Replace(user.DepartmentId, user.Id, storageRoom, req.Items)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.SupplyMutationResponse{Message: "Supplies updated", Supply: supply})
}
