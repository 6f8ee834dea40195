package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/workstream-hq/hrms-api/api/swagger"
	"github.com/workstream-hq/hrms-api/internal/handler"
	"github.com/workstream-hq/hrms-api/internal/middleware"
	"github.com/workstream-hq/hrms-api/internal/repository"
	"github.com/workstream-hq/hrms-api/internal/service"
	"github.com/workstream-hq/hrms-api/pkg/cache"
	"github.com/workstream-hq/hrms-api/pkg/config"
	"github.com/workstream-hq/hrms-api/pkg/database"
	"github.com/workstream-hq/hrms-api/pkg/export"
	"github.com/workstream-hq/hrms-api/pkg/logger"
	corsmiddleware "github.com/workstream-hq/hrms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/workstream-hq/hrms-api/pkg/middleware/requestid"
)

// @title HRMS Report API
// @version 1.0.0
// @description Tenant-scoped HR report aggregation service
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Reports.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, report caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Reports.CacheTTL, logr, true)
		}
	}

	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	leaveTypeRepo := repository.NewLeaveTypeRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	reportSvc := service.NewReportService(attendanceRepo, leaveRepo, leaveTypeRepo, employeeRepo, cacheSvc, metricsSvc, validator.New(), logr)
	exportSvc := service.NewExportService(export.NewCSVExporter(), export.NewPDFExporter(), metricsSvc, logr)

	reportHandler := handler.NewReportHandler(reportSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(cfg.JWT.Secret))
	{
		reports := api.Group("/reports")
		reports.GET("/attendance", reportHandler.Attendance)
		reports.GET("/attendance/monthly", reportHandler.AttendanceMonthly)
		reports.GET("/employees", reportHandler.Employees)
		reports.GET("/leaves", reportHandler.Leaves)
		reports.GET("/leaves/balance", reportHandler.LeaveBalance)
		reports.GET("/leaves/monthly", reportHandler.LeavesMonthly)
		reports.GET("/system", metricsHandler.System)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
