package setup

import (
	"github.com/techflow-dev/techflow/internal/config"
	"github.com/techflow-dev/techflow/internal/directory"
	"github.com/techflow-dev/techflow/internal/handler"
	"github.com/techflow-dev/techflow/internal/jwt"
	"github.com/techflow-dev/techflow/internal/middleware"
	"github.com/techflow-dev/techflow/internal/service"
	"github.com/techflow-dev/techflow/internal/storage/cloudinary"
	"github.com/techflow-dev/techflow/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	store := cloudinary.New(cfg.Private.Cloudinary)
	dir := directory.New(storage, cfg.Public.DirectoryCacheTTL)

	auth := service.NewAuth(storage, jwtService, store, dir)
	users := service.NewUser(storage, store, dir)
	providers := service.NewProvider(storage, dir)
	whiteboard := service.NewWhiteboard(storage, dir)
	supplies := service.NewSupply(storage, dir)
	stations := service.NewStation(storage)
	files := service.NewFile(storage, store, dir, cfg.Private.Cloudinary.Folder)
	reports := service.NewReport(storage)

	h := handler.New(auth, users, providers, whiteboard, supplies, stations, files, reports, store, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
