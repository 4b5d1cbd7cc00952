package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/podolab/podo-analyzer/internal/pressure"
	"github.com/podolab/podo-analyzer/internal/render"
	"github.com/podolab/podo-analyzer/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("podoserver %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := newLogger()
	log.Info().Str("version", Version).Str("addr", *addr).Msg("starting analysis server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:     *addr,
		Analysis: pressure.DefaultConfig(),
		Render:   render.DefaultOptions(),
		Logger:   log,
	})
	if err := srv.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
	log.Info().Msg("server stopped")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("PODO_LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
