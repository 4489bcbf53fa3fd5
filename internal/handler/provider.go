package handler

import (
	"net/http"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	providers, err := h.providers.List(user.DepartmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, providers)
}

func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	provider, err := h.providers.Get(user.DepartmentId, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

func (h *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateProviderRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	provider, err := h.providers.Create(user.DepartmentId, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.ProviderMutationResponse{Message: "Provider created", Provider: provider})
}

func (h *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var req api.UpdateProviderRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	provider, err := h.providers.Update(user.DepartmentId, id, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.ProviderMutationResponse{Message: "Provider updated", Provider: provider})
}

func (h *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.providers.Delete(user.DepartmentId, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Provider removed"})
}
