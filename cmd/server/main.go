package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/config"
	"github.com/mamadbah2/nutrilog/internal/repository/mongodb"
	"github.com/mamadbah2/nutrilog/internal/repository/sheets"
	"github.com/mamadbah2/nutrilog/internal/scheduler"
	"github.com/mamadbah2/nutrilog/internal/server/handlers"
	"github.com/mamadbah2/nutrilog/internal/server/router"
	authsvc "github.com/mamadbah2/nutrilog/internal/service/auth"
	daysvc "github.com/mamadbah2/nutrilog/internal/service/days"
	foodsvc "github.com/mamadbah2/nutrilog/internal/service/foods"
	profilesvc "github.com/mamadbah2/nutrilog/internal/service/profiles"
	reportingsvc "github.com/mamadbah2/nutrilog/internal/service/reporting"
	"github.com/mamadbah2/nutrilog/pkg/clients/edamam"
	"github.com/mamadbah2/nutrilog/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New("nutrilog", cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	dayLocation, err := time.LoadLocation(cfg.Days.Timezone)
	if err != nil {
		baseLogger.Fatal("invalid day timezone", zap.String("timezone", cfg.Days.Timezone), zap.Error(err))
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err == nil {
		err = mongoRepo.EnsureIndexes(connectCtx)
	}
	cancelConnect()
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Both integrations are optional; keep the interfaces nil when unconfigured.
	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = sheetsRepo
	} else {
		baseLogger.Warn("google sheets credentials missing, report export disabled")
	}

	var nutritionClient edamam.Client
	if cfg.Edamam.Enabled() {
		nutritionClient = edamam.NewClient(cfg.Edamam)
		baseLogger.Info("edamam nutrition lookup enabled")
	} else {
		baseLogger.Warn("edamam credentials missing, nutrition lookup disabled")
	}

	authService := authsvc.NewService(mongoRepo.Users(), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger.Named(baseLogger, "svc.auth"))
	profileService := profilesvc.NewService(mongoRepo.Profiles(), logger.Named(baseLogger, "svc.profiles"))
	foodService := foodsvc.NewService(mongoRepo.Foods(), nutritionClient, logger.Named(baseLogger, "svc.foods"))
	dayService := daysvc.NewService(mongoRepo.Days(), mongoRepo.Foods(), dayLocation, logger.Named(baseLogger, "svc.days"))
	reportingService := reportingsvc.NewService(mongoRepo.Days(), mongoRepo.Reports(), exporter, logger.Named(baseLogger, "svc.reporting"))

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(authService, logger.Named(baseLogger, "handlers.auth")),
		Profile: handlers.NewProfileHandler(profileService, logger.Named(baseLogger, "handlers.profile")),
		Food:    handlers.NewFoodHandler(foodService, logger.Named(baseLogger, "handlers.food")),
		Days:    handlers.NewDaysHandler(dayService, reportingService, logger.Named(baseLogger, "handlers.days")),
	}, authService, mongoRepo, logger.Named(baseLogger, "router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingService, logger.Named(baseLogger, "scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
