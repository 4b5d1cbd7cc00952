package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/podolab/podo-analyzer/internal/pressure"
	"github.com/podolab/podo-analyzer/internal/render"
)

// Config bundles the server's listen address, the analysis and render
// parameters applied to every upload, and the logger.
type Config struct {
	Addr     string
	Analysis pressure.Config
	Render   render.Options
	Logger   zerolog.Logger
}

// Server is the HTTP front end for the analysis pipeline.
type Server struct {
	cfg  Config
	echo *echo.Echo
	log  zerolog.Logger
}

// New builds a server with its routes and middleware configured.
func New(cfg Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())

	// The capture uploader runs on a separate origin.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	s := &Server{cfg: cfg, echo: e, log: cfg.Logger}
	e.GET("/", s.handleRoot)
	e.POST("/analyze", s.handleAnalyze)
	return s
}

// Start runs the server until the context is canceled, then shuts it
// down gracefully with a bounded timeout.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
		if err := s.echo.Start(s.cfg.Addr); err != nil && err != http.ErrServerClosed {
			s.log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	s.log.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
