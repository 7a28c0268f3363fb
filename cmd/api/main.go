package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobfinder-backend/config"
	_ "go-jobfinder-backend/docs" // Important for Swagger
	v1 "go-jobfinder-backend/internal/delivery/http/v1"
	"go-jobfinder-backend/internal/jobsource"
	"go-jobfinder-backend/internal/repository/postgres"
	"go-jobfinder-backend/internal/resume"
	"go-jobfinder-backend/internal/usecase"
	"go-jobfinder-backend/pkg/database"
	"go-jobfinder-backend/pkg/logger"
	"go-jobfinder-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Finder Backend API
// @version         1.0
// @description     Backend for resume-driven job search, matching and ATS scoring.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job finder backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	postingRepo := postgres.NewPostingRepository(dbPool)
	savedRepo := postgres.NewSavedPostingRepository(dbPool)
	historyRepo := postgres.NewSearchHistoryRepository(dbPool)

	// 6. Setup Resume Parser (NER tagger is an optional capability)
	var tagger resume.EntityTagger
	if cfg.NERServiceURL != "" {
		tagger = resume.NewHTTPTagger(cfg.NERServiceURL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := tagger.Ping(ctx); err != nil {
			logger.Log.Warn("NER service unreachable, resumes will use keyword extraction", "error", err)
		} else {
			logger.Log.Info("NER service available, full extraction enabled")
		}
		cancel()
	} else {
		logger.Log.Warn("NER_SERVICE_URL not set, resumes will use keyword extraction")
	}
	parser := resume.NewParser(tagger)

	// 7. Setup Job API Client
	jobClient := jobsource.NewAdzunaClient(cfg)

	// 8. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	profileUC := usecase.NewProfileUsecase(profileRepo, parser, validate, cfg.UploadDir, int64(cfg.MaxUploadSizeMB)<<20)
	searchUC := usecase.NewSearchUsecase(jobClient, postingRepo, profileRepo, historyRepo)
	savedUC := usecase.NewSavedPostingUsecase(savedRepo, postingRepo)
	atsUC := usecase.NewATSUsecase(profileRepo, postingRepo)
	analyticsUC := usecase.NewAnalyticsUsecase(postingRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		SearchUC:    searchUC,
		SavedUC:     savedUC,
		ATSUC:       atsUC,
		AnalyticsUC: analyticsUC,
		Config:      cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
