// @title           Aptos Hunt API
// @version         1.0.0
// @description     Backend API for the Aptos Hunt project directory. Handles wallet sessions, project submission, the approved listing, and owner-scoped edits of pending submissions. Persistence lives in a hosted Supabase record store; chain access is a read-only testnet balance lookup.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the wallet session token.

package main

import (
	"net/http"
	"net/url"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aptos-hunt-backend/docs"
	"aptos-hunt-backend/internal/aptos"
	"aptos-hunt-backend/internal/config"
	"aptos-hunt-backend/internal/database"
	"aptos-hunt-backend/internal/handlers"
	"aptos-hunt-backend/internal/middleware"
	"aptos-hunt-backend/internal/services"
	"aptos-hunt-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Update Swagger docs with the deployed base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Schema migrations need a direct PostgreSQL connection; everything else
	// goes through PostgREST.
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, migrations will be skipped")
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize migrator")
		} else {
			if err := migrator.Run(); err != nil {
				log.Warn().Err(err).Msg("migration failed")
			} else {
				log.Info().Msg("migrations completed")
			}
			migrator.Close()
		}
	}

	storeClient, err := store.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize record store client")
	}
	projectStore := store.NewProjectStore(storeClient)

	storageClient, err := store.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize storage client")
	}

	chainClient := aptos.NewClient(cfg.AptosNodeURL)

	projectService := services.NewProjectService(projectStore, chainClient, storageClient, cfg.MaxListRows)

	sessionHandler := handlers.NewSessionHandler(cfg, projectService)
	projectsHandler := handlers.NewProjectsHandler(projectService)
	submissionsHandler := handlers.NewSubmissionsHandler(projectService)
	myProjectsHandler := handlers.NewMyProjectsHandler(projectService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Public surface
	api.GET("/projects", projectsHandler.Explore)
	api.GET("/projects/:slug", projectsHandler.Detail)
	api.POST("/session/connect", sessionHandler.Connect)

	// Wallet-scoped surface
	session := api.Group("")
	session.Use(middleware.SessionMiddleware(cfg))
	session.DELETE("/session", sessionHandler.Disconnect)
	session.GET("/wallet/balance", sessionHandler.Balance)
	session.POST("/projects/:slug/donate", projectsHandler.Donate)
	session.POST("/submissions", submissionsHandler.Submit)
	session.GET("/my/projects", myProjectsHandler.List)
	session.PATCH("/my/projects/:project_id", myProjectsHandler.Save)
	session.POST("/my/projects/:project_id/logo", myProjectsHandler.UploadLogo)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
