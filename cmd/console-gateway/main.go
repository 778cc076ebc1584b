package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-console-api/internal/dto"
	"github.com/noah-isme/campus-console-api/internal/handler"
	"github.com/noah-isme/campus-console-api/internal/middleware"
	"github.com/noah-isme/campus-console-api/internal/repository"
	"github.com/noah-isme/campus-console-api/internal/service"
	"github.com/noah-isme/campus-console-api/internal/upstream"
	"github.com/noah-isme/campus-console-api/pkg/cache"
	"github.com/noah-isme/campus-console-api/pkg/config"
	"github.com/noah-isme/campus-console-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-console-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-console-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := dto.RegisterValidations(); err != nil {
		log.Fatalf("failed to register validations: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	// The dashboard is the only cached bundle. A missing Redis just means
	// it is assembled fresh on every request.
	var cacheRepo service.CacheRepository
	cacheEnabled := false
	if cfg.Dashboard.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			cacheEnabled = true
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Dashboard.CacheTTL, logr, cacheEnabled)

	client := upstream.NewClient(cfg.Upstream, logr, metrics)
	dir := upstream.NewDirectory(client)

	dashboardSvc := service.NewDashboardService(dir, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	courseSvc := service.NewCourseService(dir, cacheSvc, logr)
	studentSvc := service.NewStudentService(dir, cacheSvc, logr)
	instructorSvc := service.NewInstructorService(dir, cacheSvc, logr)
	registrationSvc := service.NewRegistrationService(dir, courseSvc, cacheSvc, logr)
	searchSvc := service.NewSearchService(dir, logr)
	exportSvc := service.NewRosterExportService(courseSvc, nil, nil, logr)

	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Capability(cfg.Auth))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	handler.RegisterRoutes(api, handler.Handlers{
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Course:       handler.NewCourseHandler(courseSvc),
		Student:      handler.NewStudentHandler(studentSvc),
		Instructor:   handler.NewInstructorHandler(instructorSvc),
		Registration: handler.NewRegistrationHandler(registrationSvc),
		Search:       handler.NewSearchHandler(searchSvc),
		Export:       handler.NewExportHandler(exportSvc, cfg.Export.Enabled),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
