package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/activity-catalog-api/internal/handler"
	"github.com/noah-isme/activity-catalog-api/internal/repository"
	"github.com/noah-isme/activity-catalog-api/internal/router"
	"github.com/noah-isme/activity-catalog-api/internal/service"
	"github.com/noah-isme/activity-catalog-api/pkg/config"
	"github.com/noah-isme/activity-catalog-api/pkg/database"
	"github.com/noah-isme/activity-catalog-api/pkg/logger"
)

// @title Teaching Activities API
// @version 1.0.0
// @description Read-only catalog of teachers, activities and activity types
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Error("server stopped with error", zap.Error(err))
		_ = logr.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logr.Warn("close database", zap.Error(err))
		}
	}()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	teacherRepo := repository.NewTeacherRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	activityTypeRepo := repository.NewActivityTypeRepository(db)

	teacherSvc := service.NewTeacherService(teacherRepo, activityRepo, metrics, logr)
	activitySvc := service.NewActivityService(activityRepo, teacherRepo, metrics, logr)
	activityTypeSvc := service.NewActivityTypeService(activityTypeRepo, activityRepo, teacherRepo, metrics, logr)

	engine := router.New(router.Options{
		Logger:         logr,
		Metrics:        metrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		QueryTimeout:   cfg.Database.QueryTimeout,
		EnableDocs:     cfg.Docs.Enabled,
		Teachers:       handler.NewTeacherHandler(teacherSvc),
		Activities:     handler.NewActivityHandler(activitySvc),
		ActivityTypes:  handler.NewActivityTypeHandler(activityTypeSvc),
		Observability:  handler.NewMetricsHandler(metrics, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
