package main

import (
	"net/http"

	_ "vitalpoint/docs"
	"vitalpoint/internal/app"
	"vitalpoint/internal/config"
	"vitalpoint/internal/logger"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title VitalPoint API
// @version 1.0
// @description Content API for the VitalPoint healthcare technology site: blog posts with a rich-text document model, services catalog, team, contact form.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}
	warnings, err := cfg.Validate()
	for _, w := range warnings {
		logger.Log.Warn(w)
	}
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize application", zap.Error(err))
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.SiteURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	logger.Log.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsMiddleware.Handler(router)); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
