package server

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
	"github.com/redis/go-redis/v9"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/api"
	"github.com/pageza/fittrack/backend/internal/database"
	"github.com/pageza/fittrack/backend/internal/middleware"
	"github.com/pageza/fittrack/backend/internal/router"
	"github.com/pageza/fittrack/backend/internal/service"
)

// Dependencies are the connections the server is built from. Redis and
// Archive are optional.
type Dependencies struct {
	DB      *database.DB
	Redis   *redis.Client
	Archive service.ReportArchive
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// NewServices wires the service layer from configuration and connections.
func NewServices(cfg *config.Config, deps Dependencies) (api.Services, error) {
	loc, err := cfg.Location()
	if err != nil {
		return api.Services{}, err
	}

	weather := service.NewWeatherService(cfg.OpenWeatherAPIKey, cfg.OpenWeatherURL, cfg.UpstreamTimeout, deps.Redis)
	var temperature service.TemperatureProvider = weather
	if cfg.OpenWeatherAPIKey == "" {
		log.Printf("[Server] OPENWEATHER_API_KEY not set, using %.0f°C for every city", service.DefaultTemperature)
		temperature = nil
	}

	var sessions service.SearchSessionStore
	if deps.Redis != nil {
		sessions = service.NewRedisSearchSessionStore(deps.Redis)
	} else {
		log.Printf("[Server] Redis unavailable, food search sessions are kept in memory")
		sessions = service.NewMemorySearchSessionStore()
	}

	foods := service.NewNutritionService(cfg.OpenFoodFactsURL, cfg.UpstreamTimeout)
	profiles := service.NewProfileService(deps.DB.DB, temperature, cfg.UpstreamTimeout)
	store := service.NewGormLogStore(deps.DB.DB)
	ledger := service.NewActivityLedger(store, loc)

	return api.Services{
		Auth:     service.NewAuthService(cfg.JWTSecret, cfg.GatewayKeyHash),
		Profile:  profiles,
		Activity: service.NewActivityService(profiles, store, ledger, foods, sessions, cfg.UpstreamTimeout),
		Progress: service.NewProgressService(profiles, ledger, service.NewProgressEvaluator(foods), deps.Archive, loc),
		Health:   deps.DB,
	}, nil
}

// New creates a new server instance
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	svcs, err := NewServices(cfg, deps)
	if err != nil {
		return nil, err
	}

	var limiter *middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewLogAppendRateLimiter(deps.Redis)
	}

	return &Server{
		router: router.SetupRouter(svcs, limiter, cfg.CORSOrigins),
		cfg:    cfg,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", s.cfg.ServerHost, s.cfg.ServerPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Stop(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
