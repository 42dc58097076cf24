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

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/sondong-edu/school-admin-api/api/swagger"
	"github.com/sondong-edu/school-admin-api/internal/handler"
	"github.com/sondong-edu/school-admin-api/internal/middleware"
	"github.com/sondong-edu/school-admin-api/internal/repository"
	"github.com/sondong-edu/school-admin-api/internal/service"
	"github.com/sondong-edu/school-admin-api/pkg/cache"
	"github.com/sondong-edu/school-admin-api/pkg/config"
	"github.com/sondong-edu/school-admin-api/pkg/database"
	"github.com/sondong-edu/school-admin-api/pkg/logger"
	corsmiddleware "github.com/sondong-edu/school-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/sondong-edu/school-admin-api/pkg/middleware/requestid"
	"github.com/sondong-edu/school-admin-api/pkg/response"
)

// @title School Admin API
// @version 1.0.0
// @description CRUD backend for schools, teachers, rooms, semesters, classes and lessons
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, entity cache disabled", zap.Error(err))
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)
	deps := service.CRUDDeps{
		Validator: validator.New(),
		Logger:    logr,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Exporter:  service.NewExportService(logr),
		CacheTTL:  cfg.Cache.TTL,
	}

	resources := handler.Resources{
		Schools:      service.NewSchoolService(repository.NewSchoolRepository(db), deps),
		Teachers:     service.NewTeacherService(repository.NewTeacherRepository(db), deps),
		Rooms:        service.NewRoomService(repository.NewRoomRepository(db), deps),
		Semesters:    service.NewSemesterService(repository.NewSemesterRepository(db), deps),
		ClassSchools: service.NewClassSchoolService(repository.NewClassSchoolRepository(db), deps),
		Lessons:      service.NewLessonService(repository.NewLessonRepository(db), deps),
	}

	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(cacheRepo.Ping)
	}
	metricsHandler := handler.NewMetricsHandler(metricsSvc, checks, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins,
		response.HeaderTotalCount,
		"Link",
		response.AlertHeader(cfg.AppName),
		response.ErrorHeader(cfg.AppName),
		response.ParamsHeader(cfg.AppName),
	))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterResources(r.Group(cfg.APIPrefix), resources, handler.ResourceConfig{
		AppName:   cfg.AppName,
		APIPrefix: cfg.APIPrefix,
		Paging: handler.PagingConfig{
			DefaultSize: cfg.Paging.DefaultSize,
			MaxSize:     cfg.Paging.MaxSize,
		},
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
