// file: internal/server/server.go
// version: 2.0.0
// guid: 4e5f6a7b-8c9d-0e1f-2a3b-4c5d6e7f8a9b

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jdfalk/wordbook/internal/auth"
	"github.com/jdfalk/wordbook/internal/database"
	"github.com/jdfalk/wordbook/internal/logger"
	"github.com/jdfalk/wordbook/internal/metrics"
	servermiddleware "github.com/jdfalk/wordbook/internal/server/middleware"
	"github.com/jdfalk/wordbook/internal/words"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	store      database.Store
	words      *words.Service
	auth       *auth.Service
	limiter    *servermiddleware.IPRateLimiter
	cfg        ServerConfig
	log        *log.Logger
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port               int
	Host               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	CORSOrigins        []string
	RateLimitPerMinute int
	RateLimitBurst     int
	MaxBodyBytes       int64
	// CookieSecure forces the Secure flag even when TLS is terminated upstream
	// without X-Forwarded-Proto.
	CookieSecure bool
	// GaugeInterval controls how often word and user gauges are refreshed.
	GaugeInterval time.Duration
}

// Deps are the collaborators the server routes to.
type Deps struct {
	Store database.Store
	Words *words.Service
	Auth  *auth.Service
}

// NewServer creates a new server instance
func NewServer(deps Deps, cfg ServerConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	if os.Getenv(gin.EnvGinMode) != "" {
		gin.SetMode(os.Getenv(gin.EnvGinMode))
	}

	s := &Server{
		router:  gin.New(),
		store:   deps.Store,
		words:   deps.Words,
		auth:    deps.Auth,
		limiter: servermiddleware.NewIPRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst),
		cfg:     cfg,
		log:     logger.New("server"),
	}

	s.router.Use(servermiddleware.RequestID())
	s.router.Use(accessLog(s.log))
	s.router.Use(recovery(s.log))
	s.router.Use(corsMiddleware(cfg.CORSOrigins))

	// Register metrics (idempotent)
	metrics.Register()

	s.setupRoutes()
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// SetRateLimit changes the per-IP limit without a restart.
func (s *Server) SetRateLimit(requestsPerMinute, burst int) {
	s.limiter.SetLimit(requestsPerMinute, burst)
	s.log.Info("rate limit updated", "per_minute", requestsPerMinute, "burst", burst)
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:        s.router,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("starting server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	go s.refreshGauges(ctx)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("server exited")
	return nil
}

// refreshGauges updates the word, user and goroutine gauges and drops
// expired cache entries until ctx ends.
func (s *Server) refreshGauges(ctx context.Context) {
	interval := s.cfg.GaugeInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.updateGauges(ctx)
		s.purgeCaches()
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) purgeCaches() {
	if s.words == nil {
		return
	}
	s.words.PurgeExpired()
}

func (s *Server) updateGauges(ctx context.Context) {
	metrics.SetGoroutines(runtime.NumGoroutine())
	if s.store == nil {
		return
	}
	if n, err := s.store.CountWords(ctx); err == nil {
		metrics.SetWords(n)
	} else {
		s.log.Debug("failed to count words", "err", err)
	}
	if n, err := s.store.CountUsers(ctx); err == nil {
		metrics.SetUsers(n)
	} else {
		s.log.Debug("failed to count users", "err", err)
	}
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint (both paths for compatibility)
	s.router.GET("/api/health", s.healthCheck)
	s.router.GET("/api/v1/health", s.healthCheck)

	api := s.router.Group("/api/v1")
	api.Use(s.limiter.Middleware())
	api.Use(servermiddleware.MaxRequestBodySize(s.cfg.MaxBodyBytes))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", s.signUp)
		authGroup.POST("/signin", s.signIn)
		authGroup.POST("/signout", s.signOut)
		authGroup.GET("/me", servermiddleware.RequireAuth(s.auth), s.me)
	}

	wordGroup := api.Group("/words", servermiddleware.RequireAuth(s.auth))
	{
		wordGroup.POST("/generate", s.generateWord)
		wordGroup.POST("/suggest", s.suggestWords)
		wordGroup.POST("", s.registerWord)
		wordGroup.GET("", s.listUserWords)
		wordGroup.GET("/:id", s.getUserWord)
		wordGroup.DELETE("/:id", s.deleteUserWord)
	}

	s.router.NoRoute(func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, "route not found", "NOT_FOUND")
	})
}

// corsMiddleware adds CORS headers. Credentials are only allowed for listed
// origins; with no list every origin is allowed without credentials.
func corsMiddleware(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case len(origins) == 0:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && (slices.Contains(origins, origin) || slices.Contains(origins, "*")):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	resp := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   Version,
	}
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		count, err := s.store.CountWords(ctx)
		if err != nil {
			resp["status"] = "degraded"
			resp["partial_error"] = "database unavailable"
			s.log.Warn("health check failed", "err", err)
		} else {
			resp["metrics"] = gin.H{"words": count}
		}
	}
	c.JSON(http.StatusOK, resp)
}
