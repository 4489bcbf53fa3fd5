package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/techflow-dev/techflow/internal/config"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
	"github.com/techflow-dev/techflow/internal/service"
)

type Handler struct {
	auth       service.AuthService
	users      service.UserService
	providers  service.ProviderService
	whiteboard service.WhiteboardService
	supplies   service.SupplyService
	stations   service.StationService
	files      service.FileService
	reports    service.ReportService
	store      service.ObjectStore
	cfg        *config.Config
}

func New(
	auth service.AuthService,
	users service.UserService,
	providers service.ProviderService,
	whiteboard service.WhiteboardService,
	supplies service.SupplyService,
	stations service.StationService,
	files service.FileService,
	reports service.ReportService,
	store service.ObjectStore,
	cfg *config.Config,
) *Handler {
	return &Handler{auth, users, providers, whiteboard, supplies, stations, files, reports, store, cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// pathId parses the {id} route variable; mux's [0-9]+ pattern already
// guarantees digits, this just converts.
func pathId(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.BadRequest("Invalid id")
	}
	return id, nil
}
