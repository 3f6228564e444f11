package app

import (
	"time"

	"vitalpoint/internal/config"
	"vitalpoint/internal/db"
	"vitalpoint/internal/handlers"
	"vitalpoint/internal/repository"
	"vitalpoint/internal/routes"
	"vitalpoint/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// repositories
	userRepo := repository.NewUserRepository(conn)
	postRepo := repository.NewPostRepo(conn)
	serviceRepo := repository.NewServiceRepo(conn)
	teamRepo := repository.NewTeamRepo(conn)
	contactRepo := repository.NewContactRepo(conn)
	taxonomyRepo := repository.NewTaxonomyRepo(conn)
	mediaRepo := repository.NewMediaRepo(conn)

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		accessTTL = 15 * time.Minute
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		refreshTTL = 720 * time.Hour
	}

	// services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, accessTTL, refreshTTL)
	postService := services.NewPostService(postRepo)
	catalogService := services.NewServiceCatalog(serviceRepo)
	teamService := services.NewTeamService(teamRepo)
	contactService := services.NewContactService(contactRepo, cfg.ContactEmail)
	taxonomyService := services.NewTaxonomyService(taxonomyRepo)
	mediaService := services.NewMediaService(mediaRepo)
	emailService := services.NewEmailService(cfg)
	ogImageService := services.NewOGImageService("VitalPoint")

	// handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	postHandler := handlers.NewPostHandler(postService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	teamHandler := handlers.NewTeamHandler(teamService)
	contactHandler := handlers.NewContactHandler(contactService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	searchHandler := handlers.NewSearchHandler(postService, catalogService)
	ogImageHandler := handlers.NewOGImageHandler(postService, ogImageService)

	for i := 0; i < 3; i++ {
		go services.StartEmailWorker(emailService)
	}

	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret,
		authHandler, postHandler, serviceHandler, teamHandler,
		contactHandler, taxonomyHandler, mediaHandler, searchHandler, ogImageHandler)

	return router, nil
}
