package handler

import (
	"net/http"

	"github.com/techflow-dev/techflow/internal/api"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) ListStations(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	stations, err := h.stations.List(user.DepartmentId, r.URL.Query().Get("type"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stations)
}

func (h *Handler) CreateStation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateStationRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	station, err := h.stations.Create(user.DepartmentId, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, api.StationMutationResponse{Message: "Computer station created", Station: station})
}

func (h *Handler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var req api.UpdateStationRequest
	if err := utils.DecodeValidate(r.Body, &req); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	station, err := h.stations.Update(user.DepartmentId, id, req)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.StationMutationResponse{Message: "Computer station updated", Station: station})
}

func (h *Handler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	id, err := pathId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.stations.Delete(user.DepartmentId, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Computer station removed"})
}
