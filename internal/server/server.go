package server

import (
	"fmt"
	"net/http"
	"time"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/config"
	"layers-storefront/internal/detail"
	custommiddleware "layers-storefront/internal/middleware"
	"layers-storefront/internal/session"
	"layers-storefront/internal/shell"
	"layers-storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	sessions *session.Registry
	redis    *redis.Client
}

// NewServer wires the catalog, session registry and HTTP routes. redisClient
// may be nil, which disables rate limiting.
func NewServer(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client) *Server {
	store := catalog.NewStore()
	sessions := session.NewRegistry(
		store,
		cfg.Session.IdleTTL,
		logger,
		shell.WithDetailOptions(detail.WithCartAckDelay(cfg.Detail.CartAckDelay)),
	)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      NewRouter(cfg, logger, store, sessions, redisClient),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		redis:    redisClient,
	}

	return server
}

// NewRouter builds the HTTP handler tree
func NewRouter(cfg *config.Config, logger *zap.Logger, store catalog.Store, sessions transport.SessionStore, redisClient *redis.Client) http.Handler {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.PrometheusMetrics)
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	var limiter func(http.Handler) http.Handler
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "storefront_rate_limit",
		}, logger)
	}

	transport.NewCatalogHandler(store, logger).RegisterRoutes(router)
	transport.NewSessionHandler(sessions, logger).RegisterRoutes(router, limiter)

	return router
}

// Sessions returns the session registry so the caller can run its sweeper
func (s *Server) Sessions() *session.Registry {
	return s.sessions
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	s.sessions.Close()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
