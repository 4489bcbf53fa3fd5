package handler

import (
	"fmt"
	"net/http"

	"github.com/techflow-dev/techflow/internal/domain"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/service"
	"github.com/techflow-dev/techflow/internal/utils"
)

func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reports.Users)
}

func (h *Handler) ExportProviders(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reports.Providers)
}

func (h *Handler) ExportStations(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reports.Stations)
}

func (h *Handler) ExportSupplies(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.reports.Supplies)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, build func(domain.DepartmentId) (service.Export, error)) {
	user := middleware.GetUserFromContext(r)

	export, err := build(user.DepartmentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}
