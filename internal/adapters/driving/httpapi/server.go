package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP search endpoint for sercha-site.
type Server struct {
	cfg     domain.ServerSettings
	echo    *echo.Echo
	metrics *Metrics
	limiter *RateLimiter
}

// NewServer creates an HTTP server serving the given ports.
func NewServer(ports *Ports, cfg domain.ServerSettings) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		echo:    echo.New(),
		metrics: NewMetrics(),
	}
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Validator = newRequestValidator()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogError:     true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Debug("http: %s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			} else {
				logger.Warn("http: %s %s %d %s id=%s: %v", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
			}
			return nil
		},
	}))
	e.Use(s.metricsMiddleware())
	e.Use(middleware.Recover())

	s.registerRoutes(ports)

	return s, nil
}

func (s *Server) registerRoutes(ports *Ports) {
	h := &handlers{ports: ports, metrics: s.metrics}
	e := s.echo

	e.GET("/healthz", h.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))
	if ports.Sitemap != nil {
		e.GET("/sitemap.xml", h.sitemapXML)
	}

	api := e.Group("/api")
	if s.limiter != nil {
		api.Use(s.limiter.Middleware())
	}
	api.GET("/search", h.search)
	api.POST("/reindex", h.reindex)
	if ports.Content != nil {
		api.GET("/content", h.listContent)
		api.GET("/content/:source/*", h.getContent)
	}
	if ports.Tags != nil {
		api.GET("/tags", h.listTags)
		api.GET("/tags/:tag", h.listTagged)
	}
}

// metricsMiddleware counts every request by route and final status.
func (s *Server) metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = mapDomainError(err).Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			s.metrics.RecordRequest(route, status)
			return err
		}
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.echo,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.limiter != nil {
		go s.limiter.Run(runCtx)
	}

	go func() {
		<-runCtx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http: shutdown: %v", err)
		}
	}()

	logger.Info("http: listening on %s", s.cfg.Addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
