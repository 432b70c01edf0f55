// Package server contains the HTTP handlers for the marketplace read API.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/cache"
	"marketplace/internal/config"
	"marketplace/internal/featureflags"
	"marketplace/internal/fixtures"
	"marketplace/internal/middleware"
	"marketplace/internal/models"
	"marketplace/internal/observability"
	"marketplace/internal/repository"
	"marketplace/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const serviceName = "marketplace-api"

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	redis          *redis.Client
	data           *service.DataService
	featureFlags   *featureflags.Manager
	promMiddleware *fiberprometheus.FiberPrometheus
	cacheTTL       time.Duration
}

// NewServer builds a server from configuration: it loads the fixture set,
// connects Redis when REDIS_URL is set and registers HTTP metrics on the
// default Prometheus registry.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	ds, err := loadFixtures(cfg.FixturesDir)
	if err != nil {
		return nil, err
	}

	redisClient := cache.InitRedis(ctx, cfg.RedisURL)
	data := service.NewDataService(repository.NewStore(ds))

	return NewServerWithDeps(cfg, data, redisClient, prometheus.DefaultRegisterer), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil, which disables caching and rate limiting. The
// package cache client is replaced by redisClient.
func NewServerWithDeps(cfg *config.Config, data *service.DataService, redisClient *redis.Client, reg prometheus.Registerer) *Server {
	cache.SetClient(redisClient)

	return &Server{
		config:         cfg,
		redis:          redisClient,
		data:           data,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
		promMiddleware: middleware.InitMetrics(serviceName, reg),
		cacheTTL:       time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

func loadFixtures(dir string) (*fixtures.Dataset, error) {
	if dir == "" {
		ds, err := fixtures.Default()
		if err != nil {
			return nil, fmt.Errorf("load bundled fixtures: %w", err)
		}
		return ds, nil
	}
	ds, err := fixtures.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	return ds, nil
}

// NewApp returns a Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Marketplace API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler turns errors returned by handlers into the standard error body.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INTERNAL_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = "VALIDATION_ERROR"
		}
		return models.RespondWithError(c, fe.Code, &models.AppError{Code: code, Message: fe.Message})
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New())

	// Tracing runs before the context middleware so log records carry the trace ID
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.SubjectHeader,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/stats", s.GetStats)
	api.Get("/feature-flags", s.GetFeatureFlags)

	jobs := api.Group("/jobs")
	jobs.Get("/", s.ListJobs)
	// Specific /:id/:resource routes before the generic /:id route
	jobs.Get("/:id/company", s.GetJobWithCompany)
	jobs.Get("/:id/tests", s.GetJobTests)
	jobs.Get("/:id/applications", s.GetJobApplications)
	jobs.Get("/:id", s.GetJob)

	companies := api.Group("/companies")
	companies.Get("/", s.GetCompanies)
	companies.Get("/:id/jobs", s.GetCompanyJobs)
	companies.Get("/:id", s.GetCompany)

	developers := api.Group("/developers")
	developers.Get("/", s.GetDevelopers)
	developers.Get("/:id", s.GetDeveloper)

	games := api.Group("/games")
	games.Get("/", s.SearchGames)
	games.Get("/free", s.GetFreeGames)
	games.Get("/most-played", s.GetMostPlayedGames)
	games.Get("/recently-played", s.GetRecentlyPlayedGames)
	games.Get("/:id", s.GetGame)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:id/applications", s.GetUserApplications)
	users.Get("/:id/certifications", s.GetUserCertifications)
	users.Get("/:id", s.GetUser)

	applications := api.Group("/applications")
	applications.Get("/", s.GetApplications)
	applications.Post("/",
		middleware.RequireFeature(s.featureFlags, featureflags.Applications),
		s.writeLimit("create_application", 10),
		s.CreateApplication)
	applications.Patch("/:id/status",
		middleware.RequireFeature(s.featureFlags, featureflags.Applications),
		s.writeLimit("update_application", 30),
		s.UpdateApplicationStatus)
	applications.Get("/:id", s.GetApplication)

	tests := api.Group("/tests")
	tests.Get("/", s.GetTests)
	tests.Get("/:id", s.GetTest)

	certifications := api.Group("/certifications")
	certifications.Get("/", s.GetCertifications)
	certifications.Get("/:id", s.GetCertification)

	admin := api.Group("/admin",
		middleware.RequireFeature(s.featureFlags, featureflags.AdminCRUD),
		s.writeLimit("admin", 0))
	admin.Post("/jobs", s.CreateJob)
	admin.Put("/jobs/:id", s.UpdateJob)
	admin.Delete("/jobs/:id", s.DeleteJob)
}

// writeLimit rate limits a write route per client IP. A zero perMinute uses
// RATE_LIMIT_PER_MINUTE. Exempt environments and a zero configured limit
// get a pass-through handler.
func (s *Server) writeLimit(name string, perMinute int) fiber.Handler {
	if perMinute == 0 {
		perMinute = s.config.RateLimitPerMinute
	}
	if perMinute <= 0 || middleware.RateLimitExempt(s.config.Env) {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return middleware.RateLimit(s.redis, perMinute, time.Minute, name)
}

// HealthCheck reports liveness plus the state of the optional Redis cache.
// A configured Redis that fails to answer makes the service unhealthy.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"redis": redisStatus,
		},
		"time": time.Now().UTC(),
	})
}

// GetStats handles GET /api/stats
// @Summary Dashboard counts
// @Tags stats
// @Produce json
// @Success 200 {object} service.Stats
// @Router /stats [get]
func (s *Server) GetStats(c *fiber.Ctx) error {
	stats, err := cached(c, s, cache.ResourceStats, s.data.Stats)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(stats)
}

// Shutdown releases the Redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	observability.GlobalLogger.InfoContext(ctx, "closing redis client")
	return s.redis.Close()
}
