package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/pagelab/internal/api/http"
	"github.com/GriffinCanCode/pagelab/internal/api/middleware"
	"github.com/GriffinCanCode/pagelab/internal/domain/catalog"
	"github.com/GriffinCanCode/pagelab/internal/domain/query"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/config"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/logging"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/pagelab/internal/infrastructure/tracing"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	store      *catalog.Store
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
	tracer     *tracing.Tracer
}

// NewServer creates a new server instance. A nil logger is built from
// cfg.Logging.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)
	}

	logger.Info("Initializing pagelab server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Int("users", cfg.Data.Users),
		zap.Int("products", cfg.Data.Products),
	)

	gen := catalog.NewGenerator(cfg.Data.Seed)
	store := catalog.New(gen.Users(cfg.Data.Users), gen.Products(cfg.Data.Products))
	logger.Info("Catalog generated",
		zap.Uint64("seed", gen.Seed()),
		zap.Int("users", store.Stats().Users),
		zap.Int("products", store.Stats().Products),
	)

	metrics := monitoring.NewMetrics()
	stats := store.Stats()
	metrics.SetCatalogSize("users", stats.Users)
	metrics.SetCatalogSize("products", stats.Products)

	tracer := tracing.New("pagelab", logger.Component("tracing").Logger)

	if !cfg.Logging.Development && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(middleware.RequestLogger(logger.Component("http").Logger))
	router.Use(monitoring.Middleware(metrics))

	security := securityConfig(cfg.Security)
	if cfg.Security.Enabled {
		router.Use(middleware.SecurityHeaders(security))
	}

	router.Use(middleware.CORS(corsConfig(cfg.CORS)))

	var strict gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("global", cfg.RateLimit.Global),
		)
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: cfg.RateLimit.GlobalRPS,
				Burst:             cfg.RateLimit.GlobalBurst,
			}, metrics))
		}
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			IdleTTL:           cfg.RateLimit.IdleTTL(),
		}, metrics))
		strict = middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.StrictRPS,
			Burst:             cfg.RateLimit.StrictBurst,
			IdleTTL:           cfg.RateLimit.IdleTTL(),
			Name:              middleware.LimiterStrict,
		}, metrics)
	}

	if cfg.Compression.Enabled {
		compression := middleware.DefaultCompressionConfig()
		compression.Level = cfg.Compression.Level
		compress, err := middleware.Compress(compression)
		if err != nil {
			tracer.Close()
			return nil, fmt.Errorf("failed to configure compression: %w", err)
		}
		router.Use(compress)
	}

	handlers := apihttp.NewHandlers(query.NewEngine(store), metrics, security)
	apihttp.RegisterRoutes(router, handlers, strict)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully", zap.String("instance_id", handlers.InstanceID()))

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:   store,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
		tracer:  tracer,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the catalog served by this instance.
func (s *Server) Store() *catalog.Store {
	return s.store
}

// Run starts the HTTP server and blocks until it stops. A graceful
// Shutdown makes Run return nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", l.Addr().String()))
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then stops the tracer.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}

// Close shuts down using the configured timeout.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeoutDuration())
	defer cancel()
	return s.Shutdown(ctx)
}

func securityConfig(cfg config.SecurityConfig) middleware.SecurityConfig {
	return middleware.SecurityConfig{
		FrameOptions:          cfg.FrameOptions,
		ContentSecurityPolicy: cfg.ContentSecurityPolicy,
		ReferrerPolicy:        cfg.ReferrerPolicy,
		HSTSMaxAge:            time.Duration(cfg.HSTSMaxAge) * time.Second,
		HSTSIncludeSubdomains: cfg.HSTSIncludeSubdomains,
	}
}

func corsConfig(cfg config.CORSConfig) middleware.CORSConfig {
	out := middleware.DefaultCORSConfig()
	if len(cfg.AllowOrigins) > 0 {
		out.AllowOrigins = cfg.AllowOrigins
	}
	out.AllowCredentials = cfg.AllowCredentials
	out.MaxAge = cfg.MaxAge()
	return out
}
