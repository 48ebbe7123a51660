package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusworks/placement-portal/internal/api"
	"github.com/campusworks/placement-portal/internal/api/metrics"
	"github.com/campusworks/placement-portal/internal/core/service"
	mongoinfra "github.com/campusworks/placement-portal/internal/infrastructure/db/mongo"
	redisinfra "github.com/campusworks/placement-portal/internal/infrastructure/db/redis"
	"github.com/campusworks/placement-portal/internal/infrastructure/queue"
	"github.com/campusworks/placement-portal/internal/pkg/config"
	"github.com/campusworks/placement-portal/pkg/logger"
)

// @title           Placement Portal API
// @version         1.0
// @description     Campus placement portal: sessions, navigation, jobs, applications and reports.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongoinfra.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	sessionStore := redisinfra.NewSessionStore(rdb)
	dedup := redisinfra.NewActivityDedup(rdb)
	directoryRepo := mongoinfra.NewDirectoryRepository(db)
	jobRepo := mongoinfra.NewJobRepository(db)
	applicationRepo := mongoinfra.NewApplicationRepository(db)
	placementRepo := mongoinfra.NewPlacementRepository(db)
	activityRepo := mongoinfra.NewActivityRepository(db)

	if err := applicationRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("application index creation failed")
	}

	// --- Services ---
	sessions := service.NewSessionService(sessionStore, directoryRepo, service.SessionConfig{
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.Auth.TokenTTL,
		LoginDelay:  cfg.Auth.LoginDelay,
		SignupDelay: cfg.Auth.SignupDelay,
	}, log)
	navigation := service.NewNavigationService(log)
	jobs := service.NewJobService(jobRepo, log)
	applications := service.NewApplicationService(applicationRepo, jobRepo, placementRepo, log)
	reports := service.NewReportService(directoryRepo, jobRepo, applicationRepo, placementRepo, log)
	activity := service.NewActivityService(activityRepo, dedup, log)

	dispatcher := queue.NewDispatcher(cfg.Auth.Workers, activity, log)
	dispatcher.Start(ctx)

	// Restore a previously persisted session before serving traffic.
	if err := sessions.Initialize(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting anonymous")
	}
	if snap := sessions.Snapshot(); snap.IsAuthenticated {
		metrics.SessionsRestoredTotal.Inc()
		navigation.Start()
		log.Info().Str("email", snap.Identity.Email).Msg("session restored")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg.JWTSecret, api.Services{
		Sessions:     sessions,
		Navigation:   navigation,
		Jobs:         jobs,
		Applications: applications,
		Reports:      reports,
		Directory:    directoryRepo,
		Activity:     dispatcher,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("placement portal listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
