// Package server exposes the almanac calculations as a JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/smokyabdulrahman/hisab/internal/metrics"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Site fills in whatever a request leaves out.
	Site prayer.Site
	// Tier is the default hilal visibility tier.
	Tier int
	// Registry receives the server's collectors and backs /metrics.
	// A fresh registry is created when nil.
	Registry *prometheus.Registry
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Server holds the engine and the state its handlers share.
type Server struct {
	engine  *gin.Engine
	site    prayer.Site
	tier    int
	metrics *metrics.Metrics
	now     func() time.Time
}

// New builds a Server with every route registered.
func New(opts Options) *Server {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	tier := opts.Tier
	if tier == 0 {
		tier = 1
	}

	s := &Server{
		engine:  gin.New(),
		site:    opts.Site,
		tier:    tier,
		metrics: metrics.New(reg),
		now:     now,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestLogger())
	s.engine.Use(s.metrics.Middleware())
	s.engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods:    []string{"GET", "OPTIONS", "HEAD"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/schedule", s.schedule)
		v1.GET("/detail", s.detail)
		v1.GET("/qibla", s.qibla)
		v1.GET("/hijri/to-gregorian", s.hijriToGregorian)
		v1.GET("/hijri/from-gregorian", s.hijriFromGregorian)
		v1.GET("/calendar/anchored", s.anchored)
		v1.GET("/calendar/month", s.month)
		v1.GET("/ijtima", s.ijtima)
		v1.GET("/tahlil", s.tahlil)
	}
	return s
}

// Handler returns the engine as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
