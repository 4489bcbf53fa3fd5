package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techflow-dev/techflow/internal/middleware/metrics"
	"github.com/techflow-dev/techflow/internal/setup"
)

// New creates and configures a mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for the dashboard
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{deps.Config.Public.ClientOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public auth routes
	api.HandleFunc("/auth/register", h.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Logged-in routes
	loggedIn := api.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())

	loggedIn.HandleFunc("/auth/profile", h.Profile).Methods("GET")
	loggedIn.HandleFunc("/auth/profile", h.UpdateProfile).Methods("PUT")
	loggedIn.HandleFunc("/auth/profile", h.DeleteAccount).Methods("DELETE")
	loggedIn.HandleFunc("/auth/upload-profile-image", h.UploadProfileImage).Methods("POST")

	loggedIn.HandleFunc("/users", h.ListUsers).Methods("GET")
	loggedIn.HandleFunc("/users/{id:[0-9]+}", h.GetUser).Methods("GET")

	loggedIn.HandleFunc("/providers", h.ListProviders).Methods("GET")
	loggedIn.HandleFunc("/providers", h.CreateProvider).Methods("POST")
	loggedIn.HandleFunc("/providers/{id:[0-9]+}", h.GetProvider).Methods("GET")
	loggedIn.HandleFunc("/providers/{id:[0-9]+}", h.UpdateProvider).Methods("PUT")

	loggedIn.HandleFunc("/lab-whiteboard", h.GetWhiteboard).Methods("GET")
	loggedIn.HandleFunc("/lab-whiteboard", h.UpdateWhiteboard).Methods("PUT")

	loggedIn.HandleFunc("/supplies", h.ListSupplies).Methods("GET")
	loggedIn.HandleFunc("/supplies/{storageRoom}", h.UpdateSupply).Methods("PUT")

	loggedIn.HandleFunc("/com-stations", h.ListStations).Methods("GET")
	loggedIn.HandleFunc("/com-stations", h.CreateStation).Methods("POST")
	loggedIn.HandleFunc("/com-stations/{id:[0-9]+}", h.UpdateStation).Methods("PUT")

	loggedIn.HandleFunc("/files", h.ListFiles).Methods("GET")
	loggedIn.HandleFunc("/files/folder", h.CreateFolder).Methods("POST")
	loggedIn.HandleFunc("/files/upload", h.UploadFile).Methods("POST")
	loggedIn.HandleFunc("/files/{id:[0-9]+}/download", h.DownloadFile).Methods("GET")
	loggedIn.HandleFunc("/files/{id:[0-9]+}", h.DeleteFile).Methods("DELETE")

	// Admin routes
	admin := api.NewRoute().Subrouter()
	admin.Use(authMw.AdminOnly())

	admin.HandleFunc("/users/{id:[0-9]+}", h.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/providers/{id:[0-9]+}", h.DeleteProvider).Methods("DELETE")
	admin.HandleFunc("/com-stations/{id:[0-9]+}", h.DeleteStation).Methods("DELETE")

	admin.HandleFunc("/reports/export/users", h.ExportUsers).Methods("GET")
	admin.HandleFunc("/reports/export/providers", h.ExportProviders).Methods("GET")
	admin.HandleFunc("/reports/export/com-stations", h.ExportStations).Methods("GET")
	admin.HandleFunc("/reports/export/supplies", h.ExportSupplies).Methods("GET")

	return r
}
