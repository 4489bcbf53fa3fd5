package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/techflow-dev/techflow/internal/config"
	"github.com/techflow-dev/techflow/internal/logger"
	"github.com/techflow-dev/techflow/internal/router"
	"github.com/techflow-dev/techflow/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		return
	}
	defer deps.Storage.Cleanup()

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.Port)
	logger.Log.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
