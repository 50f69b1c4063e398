package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/armonia-apps/msa-client-api/api/swagger"
	"github.com/armonia-apps/msa-client-api/internal/gateway"
	"github.com/armonia-apps/msa-client-api/internal/handler"
	"github.com/armonia-apps/msa-client-api/internal/middleware"
	"github.com/armonia-apps/msa-client-api/internal/service"
	"github.com/armonia-apps/msa-client-api/internal/session"
	"github.com/armonia-apps/msa-client-api/pkg/config"
	"github.com/armonia-apps/msa-client-api/pkg/logger"
	corsmiddleware "github.com/armonia-apps/msa-client-api/pkg/middleware/cors"
	reqidmiddleware "github.com/armonia-apps/msa-client-api/pkg/middleware/requestid"
	"github.com/armonia-apps/msa-client-api/pkg/tokenstore"
)

// @title MSA Client API
// @version 0.1.0
// @description Local client gateway for the music school backend
// @BasePath /client
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := tokenstore.NewFileStore(cfg.Session.TokenFile)
	if err != nil {
		logr.Sugar().Fatalw("failed to open token store", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	// The session store and the gateway client reference each other: the
	// store validates tokens through the client, the client reads the live
	// token from the store. TokenFunc breaks the construction cycle.
	var sessions *session.Store
	client := gateway.New(cfg.Backend, gateway.TokenFunc(func() (string, bool) {
		if sessions == nil {
			return "", false
		}
		return sessions.Token()
	}), logr, gateway.WithObserver(metricsSvc.ObserveBackendCall))
	sessions = session.NewStore(client, tokens, logr, cfg.Session.LoginTimeout)

	validate := validator.New()

	deps := handler.Deps{
		Sessions:      sessions,
		Users:         service.NewUserService(client, validate, logr),
		Courses:       service.NewCourseService(client, validate, logr),
		Attendance:    service.NewAttendanceService(client, validate, logr),
		Assignments:   service.NewAssignmentService(client, validate, logr),
		Payments:      service.NewPaymentService(client, validate, logr),
		Notifications: service.NewNotificationService(client, validate, logr),
		Dashboard:     service.NewDashboardService(client, logr),
		Admin:         service.NewAdminService(client, cfg.Seed, validate, logr),
		Exports:       service.NewExportService(client, cfg.Exports, logr, nil, nil),
		Metrics:       metricsSvc,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, deps)

	// Restore any persisted session before serving so role-gated routes
	// never observe the uninitialized state.
	sessions.Initialize(context.Background())

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("client gateway starting",
		"addr", addr,
		"env", cfg.Env,
		"backend", cfg.Backend.URL,
		"session", sessions.Current().State,
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
