// Package server exposes path search over HTTP with gin.
//
// Routes:
//
//	POST /v1/search  run a search, see SearchRequest and SearchResponse
//	GET  /healthz    liveness
//	GET  /metrics    Prometheus metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Config holds the settings for a Server.
type Config struct {
	Addr            string        // address to listen on
	BaseURL         string        // prefix for API routes
	GinMode         string        // debug, release or test
	MaxCells        int           // largest accepted grid
	ShutdownTimeout time.Duration // grace period for in-flight requests
	SearchOptions   []astar.Option
	Logger          *zap.Logger
}

// Server is the HTTP API and its dependencies.
type Server struct {
	cfg      Config
	engine   *gin.Engine
	registry *prometheus.Registry
}

// New builds the router. Metrics go to a registry private to this Server.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = 1 << 20
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.New(reg)

	s := &Server{cfg: cfg, registry: reg}
	s.engine = s.routes(NewSearchController(rec, cfg.Logger, cfg.MaxCells, cfg.SearchOptions))

	return s
}

func (s *Server) routes(controllers ...Controller) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), Logger(s.cfg.Logger))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := router.Group(s.cfg.BaseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range controllers {
			c.Register(v1)
		}
	}

	return router
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on cfg.Addr and serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.cfg.Logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	s.cfg.Logger.Info("stopped")

	return nil
}
